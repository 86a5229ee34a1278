package domain

import "time"

const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
	PlanVIP     = "vip"

	ClientActive   = "active"
	ClientInactive = "inactive"

	PaymentPaid    = "paid"
	PaymentPending = "pending"
)

// Client is a customer of the training business and the owner of a dog.
type Client struct {
	ID              string     `json:"id" bson:"_id"`
	Name            string     `json:"name" bson:"name"`
	Email           string     `json:"email" bson:"email"`
	DogName         string     `json:"dogName" bson:"dog_name"`
	Phone           string     `json:"phone" bson:"phone"`
	Plan            string     `json:"plan" bson:"plan"`
	Status          string     `json:"status" bson:"status"`
	PaymentStatus   string     `json:"paymentStatus" bson:"payment_status"`
	LastPaymentDate *time.Time `json:"lastPaymentDate,omitempty" bson:"last_payment_date,omitempty"`
	CreatedAt       time.Time  `json:"createdAt" bson:"created_at"`
}

// MarkPaid records a settled fee on the client.
func (c *Client) MarkPaid(at time.Time) {
	paid := at.UTC()
	c.PaymentStatus = PaymentPaid
	c.LastPaymentDate = &paid
}
