package domain

import "time"

// AppointmentStatus is the booking lifecycle state.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no-show"
)

// ValidAppointmentStatus reports whether s is a known booking status.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// AppointmentService is one booked service with its price at booking time.
type AppointmentService struct {
	ServiceID string  `json:"service_id" bson:"service_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
}

// Appointment is a booked time slot for a customer.
type Appointment struct {
	ID            string               `json:"id" bson:"_id,omitempty"`
	CustomerID    string               `json:"customer_id" bson:"customer_id"`
	CustomerName  string               `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	Services      []AppointmentService `json:"services" bson:"services"`
	StartTime     time.Time            `json:"start_time" bson:"start_time"`
	EndTime       time.Time            `json:"end_time" bson:"end_time"`
	Status        AppointmentStatus    `json:"status" bson:"status"`
	TotalAmount   float64              `json:"total_amount" bson:"total_amount"`
	PaymentStatus string               `json:"payment_status,omitempty" bson:"payment_status,omitempty"`
	PaymentMethod string               `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	Notes         string               `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at" bson:"updated_at"`
}

// DeriveTotal recomputes TotalAmount as the sum of booked service prices.
func (a *Appointment) DeriveTotal() float64 {
	var sum float64
	for _, s := range a.Services {
		sum += s.Price
	}
	return sum
}

// Overlaps reports whether the half-open intervals [StartTime, EndTime) of
// the two appointments intersect.
func (a *Appointment) Overlaps(other *Appointment) bool {
	return a.StartTime.Before(other.EndTime) && other.StartTime.Before(a.EndTime)
}
