package memory

// Stores bundles the in-memory repositories used when no database is configured.
type Stores struct {
	Users         *UserStore
	Clients       *ClientStore
	Media         *MediaStore
	Notifications *NotificationStore
	Payments      *PaymentStore
}

func NewStores() *Stores {
	return &Stores{
		Users:         NewUserStore(),
		Clients:       NewClientStore(),
		Media:         NewMediaStore(),
		Notifications: NewNotificationStore(),
		Payments:      NewPaymentStore(),
	}
}
