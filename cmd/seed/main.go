// Command seed loads demo prescriptions for a user so reminders can be tried end to end.
//
//	go run ./cmd/seed -user demo-user -token <fcm-token>
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"careinsight/config"
	"careinsight/database"
	prescriptionRepo "careinsight/database/repository/prescription"
	userRepoPkg "careinsight/database/repository/user"
	"careinsight/models"
	"careinsight/services/prescription"
	"careinsight/services/user"
)

func main() {
	userID := flag.String("user", "demo-user", "user ID to seed")
	token := flag.String("token", "", "FCM registration token for the user's device")
	flag.Parse()

	config.LoadConfig()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	defer database.CloseDB(context.Background())

	db := database.DB()
	prescriptions := prescription.NewDefaultPrescriptionService(prescriptionRepo.NewMongoPrescriptionRepo(db))
	users := user.NewDefaultUserService(userRepoPkg.NewMongoUserRepo(db))

	if *token != "" {
		if err := users.RegisterNotificationToken(ctx, *userID, models.TokenRegistration{
			Token:      *token,
			DeviceType: "seed",
			Platform:   "cli",
		}); err != nil {
			log.Fatalf("Failed to register token: %v", err)
		}
	}

	// One dose a few minutes from now so the next ticks pick it up.
	now := time.Now().UTC()
	soon := now.Add(5 * time.Minute)
	start := now.AddDate(0, 0, -1)

	inputs := []models.PrescriptionInput{
		{
			Medication:   "Amoxicillin",
			Dosage:       "500mg",
			DurationDays: 7,
			DoctorName:   "Dr. Demo",
			StartDate:    &start,
			DosageTimes: []models.DosageTime{
				{Hour: "08", Minute: "00"},
				{Hour: "20", Minute: "00"},
			},
		},
		{
			Medication:   "Vitamin D",
			Dosage:       "1000 IU",
			DurationDays: 30,
			StartDate:    &start,
			DosageTimes: []models.DosageTime{
				{Hour: fmt.Sprintf("%d", soon.Hour()), Minute: fmt.Sprintf("%d", soon.Minute())},
			},
		},
	}

	for _, in := range inputs {
		p, err := prescriptions.CreatePrescription(ctx, *userID, in)
		if err != nil {
			log.Fatalf("Failed to seed %s: %v", in.Medication, err)
		}
		fmt.Printf("Seeded %s (%s) at %v\n", p.Medication, p.ID, p.DosageTimes)
	}
}
