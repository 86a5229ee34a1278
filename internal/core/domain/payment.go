package domain

import "time"

// Payment records an admin marking a client's fee as settled.
type Payment struct {
	ID         string    `json:"id" bson:"_id"`
	ClientID   string    `json:"clientId" bson:"client_id"`
	PaidAt     time.Time `json:"paidAt" bson:"paid_at"`
	RecordedBy string    `json:"recordedBy" bson:"recorded_by"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
}
