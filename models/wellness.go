package models

import "time"

// WellnessProfile is the body metrics a user keeps for calorie guidance.
// Height is in centimetres and weight in kilograms.
type WellnessProfile struct {
	UserID        string    `json:"userId" bson:"userId"`
	Height        float64   `json:"height" bson:"height"`
	Weight        float64   `json:"weight" bson:"weight"`
	Age           int       `json:"age" bson:"age"`
	Gender        string    `json:"gender" bson:"gender"`
	Goal          string    `json:"goal" bson:"goal"`
	ActivityLevel string    `json:"activityLevel" bson:"activityLevel"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

type WellnessProfileInput struct {
	Height        float64 `json:"height" binding:"required,gt=0,lte=300"`
	Weight        float64 `json:"weight" binding:"required,gt=0,lte=700"`
	Age           int     `json:"age" binding:"required,gt=0,lte=130"`
	Gender        string  `json:"gender" binding:"omitempty,oneof=male female other"`
	Goal          string  `json:"goal" binding:"omitempty,oneof=lose gain maintain"`
	ActivityLevel string  `json:"activityLevel" binding:"omitempty,oneof=sedentary light moderate active veryActive"`
}

// Macros are daily gram targets.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type WellnessSummary struct {
	Profile       WellnessProfile `json:"profile"`
	BMI           float64         `json:"bmi"`
	BMICategory   string          `json:"bmiCategory"`
	DailyCalories int             `json:"dailyCalories"`
	WaterMl       int             `json:"waterMl"`
	Macros        Macros          `json:"macros"`
}
