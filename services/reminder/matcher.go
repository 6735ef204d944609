package reminder

import (
	"fmt"
	"strconv"
	"time"

	"careinsight/models"
)

// CurrentWindow returns the zero-padded hour and minute that dose times are
// compared against. With bucketMinutes > 1 the minute is floored to the bucket.
func CurrentWindow(now time.Time, bucketMinutes int) (string, string) {
	minute := now.Minute()
	if bucketMinutes > 1 {
		minute = minute / bucketMinutes * bucketMinutes
	}
	return fmt.Sprintf("%02d", now.Hour()), fmt.Sprintf("%02d", minute)
}

// DueDoses selects the (prescription, dose time) pairs due in the window
// containing now. Prescriptions outside their active date range are skipped.
// There is no tolerance: a window nobody evaluates is never notified.
func DueDoses(now time.Time, prescriptions []models.Prescription, bucketMinutes int) []models.DoseDue {
	hour, minute := CurrentWindow(now, bucketMinutes)

	var due []models.DoseDue
	for _, p := range prescriptions {
		if !p.IsActive(now) {
			continue
		}
		for _, t := range p.DosageTimes {
			if t.Hour == hour && t.Minute == minute {
				due = append(due, models.DoseDue{Prescription: p, Time: t})
			}
		}
	}
	return due
}

// NormalizeDosageTime validates a dose time and zero-pads both parts.
func NormalizeDosageTime(t models.DosageTime) (models.DosageTime, error) {
	h, err := strconv.Atoi(t.Hour)
	if err != nil || h < 0 || h > 23 {
		return models.DosageTime{}, fmt.Errorf("%w: hour %q", ErrInvalidDoseTime, t.Hour)
	}
	m, err := strconv.Atoi(t.Minute)
	if err != nil || m < 0 || m > 59 {
		return models.DosageTime{}, fmt.Errorf("%w: minute %q", ErrInvalidDoseTime, t.Minute)
	}
	return models.DosageTime{Hour: fmt.Sprintf("%02d", h), Minute: fmt.Sprintf("%02d", m)}, nil
}
