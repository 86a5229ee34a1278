package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// --- Roster requests ---

type createClientRequest struct {
	Name    string `json:"name"    validate:"required,max=120"`
	Email   string `json:"email"   validate:"required,email"`
	DogName string `json:"dogName" validate:"required,max=80"`
	Phone   string `json:"phone"   validate:"required,max=40"`
	Plan    string `json:"plan"    validate:"omitempty,oneof=basic premium vip"`
	Status  string `json:"status"  validate:"omitempty,oneof=active inactive"`
}

type createMediaRequest struct {
	ClientID   string     `json:"clientId"   validate:"required"`
	Type       string     `json:"type"       validate:"required,oneof=image video"`
	URL        string     `json:"url"        validate:"required,http_url"`
	Title      string     `json:"title"      validate:"required,max=200"`
	UploadDate *time.Time `json:"uploadDate"`
}

type createNotificationRequest struct {
	ClientID string `json:"clientId" validate:"required"`
	Message  string `json:"message"  validate:"required,max=500"`
	Type     string `json:"type"     validate:"omitempty,oneof=info payment media"`
}

type recordPaymentRequest struct {
	ClientID string     `json:"clientId" validate:"required"`
	Date     *time.Time `json:"date"`
}

type markReadRequest struct {
	NotificationID string `json:"notificationId" validate:"required"`
}

// --- Roster responses ---

type recordPaymentResponse struct {
	Success     bool      `json:"success"`
	ClientID    string    `json:"clientId"`
	PaymentDate time.Time `json:"paymentDate"`
}

type markReadResponse struct {
	Success        bool   `json:"success"`
	NotificationID string `json:"notificationId"`
}
