package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type customerSnapshotRequest struct {
	ID    string `json:"id"    validate:"required"`
	Name  string `json:"name"  validate:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type therapistSnapshotRequest struct {
	ID   string `json:"id"   validate:"required"`
	Name string `json:"name" validate:"required"`
	Role string `json:"role"`
}

type lineItemRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Category string  `json:"category"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Discount float64 `json:"discount" validate:"gte=0"`
}

type createTransactionRequest struct {
	Date          time.Time                `json:"date"`
	Customer      customerSnapshotRequest  `json:"customer"       validate:"required"`
	Therapist     therapistSnapshotRequest `json:"therapist"      validate:"required"`
	Items         []lineItemRequest        `json:"items"          validate:"required,min=1,dive"`
	Subtotal      float64                  `json:"subtotal"       validate:"required,gt=0"`
	Discount      float64                  `json:"discount"       validate:"gte=0"`
	Total         float64                  `json:"total"          validate:"required,gt=0"`
	PaymentMethod string                   `json:"payment_method" validate:"required"`
}

// reportRequest uses the camelCase field names the dashboard sends.
type reportRequest struct {
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate"   validate:"required"`
	TherapistID string    `json:"therapistId"`
	CustomerID  string    `json:"customerId"`
	Category    string    `json:"category"`
}
