package models

const (
	ReminderTitle       = "Time for your medication"
	ReminderClickAction = "OPEN_MEDICATION_DETAILS"
)

// DoseDue pairs a prescription with the dose time that matched the current window.
type DoseDue struct {
	Prescription Prescription
	Time         DosageTime
}

// ReminderMessage is one push addressed to every token a user currently has.
type ReminderMessage struct {
	UserID         string            `json:"userId"`
	PrescriptionID string            `json:"prescriptionId"`
	DoseTime       string            `json:"doseTime"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	Data           map[string]string `json:"data"`
	Tokens         []string          `json:"tokens"`
}

// TokenOutcome is the delivery result for a single token.
type TokenOutcome struct {
	Token     string `json:"token"`
	Success   bool   `json:"success"`
	Retryable bool   `json:"retryable"`
	Error     error  `json:"-"`
}

// DeliveryResult is index-aligned with ReminderMessage.Tokens.
type DeliveryResult struct {
	SuccessCount int            `json:"successCount"`
	FailureCount int            `json:"failureCount"`
	Responses    []TokenOutcome `json:"responses"`
}
