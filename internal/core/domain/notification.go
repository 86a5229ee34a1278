package domain

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationPayment NotificationType = "payment"
	NotificationMedia   NotificationType = "media"
)

// Notification is a message addressed to a single client.
type Notification struct {
	ID       string           `json:"id" bson:"_id"`
	ClientID string           `json:"clientId" bson:"client_id"`
	Message  string           `json:"message" bson:"message"`
	Type     NotificationType `json:"type" bson:"type"`
	Date     time.Time        `json:"date" bson:"date"`
	Read     bool             `json:"read" bson:"read"`
}
