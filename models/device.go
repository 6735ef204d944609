// File: models/device.go
package models

import "time"

// NotificationProfile is the per-user push target record kept in the users collection.
type NotificationProfile struct {
	ID                 string    `bson:"id" json:"id"`
	NotificationTokens []string  `bson:"notificationTokens" json:"notificationTokens"`
	Email              string    `bson:"email,omitempty" json:"email,omitempty"`
	DeviceType         string    `bson:"deviceType,omitempty" json:"deviceType,omitempty"`
	Platform           string    `bson:"platform,omitempty" json:"platform,omitempty"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TokenRegistration is sent by a client after it obtains a push token.
type TokenRegistration struct {
	Token      string `json:"token" binding:"required"`
	Email      string `json:"email"`
	DeviceType string `json:"deviceType"` // "mobile" or "web"
	Platform   string `json:"platform"`
}
