package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AuthProvider      string `mapstructure:"AUTH_PROVIDER"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Firebase service account used for messaging and ID token checks.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Gemini.
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	GeminiTextModel   string `mapstructure:"GEMINI_TEXT_MODEL"`
	GeminiVisionModel string `mapstructure:"GEMINI_VISION_MODEL"`

	// Medication reminders.
	ReminderTrigger      string        `mapstructure:"REMINDER_TRIGGER"`
	ReminderSchedule     string        `mapstructure:"REMINDER_SCHEDULE"`
	ReminderMinuteBucket int           `mapstructure:"REMINDER_MINUTE_BUCKET"`
	ReminderCycleTimeout time.Duration `mapstructure:"REMINDER_CYCLE_TIMEOUT"`
	ReminderDedup        bool          `mapstructure:"REMINDER_DEDUP"`
	SnoozeMinutes        int           `mapstructure:"SNOOZE_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real deployments inject the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "careinsight")
	viper.SetDefault("AUTH_PROVIDER", "jwt")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "serviceAccountKey.json")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_TEXT_MODEL", "gemini-1.5-flash")
	viper.SetDefault("GEMINI_VISION_MODEL", "gemini-1.5-flash")
	viper.SetDefault("REMINDER_TRIGGER", "asynq")
	viper.SetDefault("REMINDER_SCHEDULE", "*/5 * * * *")
	viper.SetDefault("REMINDER_MINUTE_BUCKET", 15)
	viper.SetDefault("REMINDER_CYCLE_TIMEOUT", 4*time.Minute)
	viper.SetDefault("REMINDER_DEDUP", true)
	viper.SetDefault("SNOOZE_MINUTES", 15)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SnoozeOffset is the fixed delay applied by the snooze action.
func SnoozeOffset() time.Duration {
	return time.Duration(AppConfig.SnoozeMinutes) * time.Minute
}
