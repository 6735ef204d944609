// File: models/prescription.go
package models

import "time"

// DosageTime is a fixed time of day, stored as zero-padded 24-hour strings.
type DosageTime struct {
	Hour   string `bson:"hour" json:"hour"`
	Minute string `bson:"minute" json:"minute"`
}

// String renders the dose time as HH:MM.
func (d DosageTime) String() string {
	return d.Hour + ":" + d.Minute
}

type Prescription struct {
	ID           string       `bson:"id" json:"id"`
	UserID       string       `bson:"userId" json:"userId"`
	Medication   string       `bson:"medication" json:"medication"`
	Dosage       string       `bson:"dosage" json:"dosage"`
	Frequency    int          `bson:"frequency" json:"frequency"`       // doses per day
	DurationDays int          `bson:"durationDays" json:"durationDays"` // length of the course
	DoctorName   string       `bson:"doctorName,omitempty" json:"doctorName,omitempty"`
	Notes        string       `bson:"notes,omitempty" json:"notes,omitempty"`
	StartDate    time.Time    `bson:"startDate" json:"startDate"`
	DosageTimes  []DosageTime `bson:"dosageTimes" json:"dosageTimes"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`

	// Active is never persisted; it is filled in from the date range on read.
	Active bool `bson:"-" json:"active"`
}

// IsActive reports whether now's UTC calendar day falls inside
// [StartDate, StartDate + DurationDays], both ends inclusive.
func (p *Prescription) IsActive(now time.Time) bool {
	start := truncateDay(p.StartDate)
	end := start.AddDate(0, 0, p.DurationDays)
	today := truncateDay(now)
	return !today.Before(start) && !today.After(end)
}

// EndOfDay is the first instant of the UTC day after t.
func EndOfDay(t time.Time) time.Time {
	return truncateDay(t).AddDate(0, 0, 1)
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// PrescriptionInput is the client payload for creating a prescription.
type PrescriptionInput struct {
	Medication   string       `json:"medication" binding:"required"`
	Dosage       string       `json:"dosage" binding:"required"`
	Frequency    int          `json:"frequency"`
	DurationDays int          `json:"durationDays" binding:"required,min=1"`
	DoctorName   string       `json:"doctorName"`
	Notes        string       `json:"notes"`
	StartDate    *time.Time   `json:"startDate,omitempty"`
	DosageTimes  []DosageTime `json:"dosageTimes" binding:"required,min=1"`
}
