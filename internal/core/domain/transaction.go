package domain

import (
	"math"
	"strings"
	"time"
)

// Epsilon is the tolerance used when comparing submitted monetary totals
// against server-side recomputation.
const Epsilon = 0.01

const (
	PaymentCash  = "cash"
	PaymentCard  = "card"
	PaymentOther = "other"
)

const TransactionCompleted = "completed"

// NormalizePaymentMethod lowercases the submitted method and reports whether
// it is one of the accepted values.
func NormalizePaymentMethod(method string) (string, bool) {
	m := strings.ToLower(strings.TrimSpace(method))
	switch m {
	case PaymentCash, PaymentCard, PaymentOther:
		return m, true
	}
	return m, false
}

// CustomerSnapshot is a denormalized copy of customer fields taken at sale
// time, so the record stays stable if the customer is later edited.
type CustomerSnapshot struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
}

// TherapistSnapshot is the staff member who performed the sale.
type TherapistSnapshot struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
	Role string `json:"role,omitempty" bson:"role,omitempty"`
}

// LineItem is one priced unit within a transaction.
type LineItem struct {
	Name     string  `json:"name" bson:"name"`
	Category string  `json:"category,omitempty" bson:"category,omitempty"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Discount float64 `json:"discount,omitempty" bson:"discount,omitempty"`
}

// Transaction is an immutable point-of-sale record. There is no update or
// delete path; corrections are recorded as new compensating transactions.
type Transaction struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	Date          time.Time         `json:"date" bson:"date"`
	Customer      CustomerSnapshot  `json:"customer" bson:"customer"`
	Therapist     TherapistSnapshot `json:"therapist" bson:"therapist"`
	Items         []LineItem        `json:"items" bson:"items"`
	Subtotal      float64           `json:"subtotal" bson:"subtotal"`
	Discount      float64           `json:"discount" bson:"discount"`
	Total         float64           `json:"total" bson:"total"`
	PaymentMethod string            `json:"payment_method" bson:"payment_method"`
	Status        string            `json:"status" bson:"status"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
}

// ExpectedSubtotal recomputes the subtotal from the line items.
func (t *Transaction) ExpectedSubtotal() float64 {
	var sum float64
	for _, it := range t.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// ExpectedTotal recomputes the total from subtotal and discount.
func (t *Transaction) ExpectedTotal() float64 {
	return math.Max(0, t.Subtotal-t.Discount)
}

// Validate re-verifies every invariant server-side before the record is
// persisted. Submitted arithmetic is never trusted from the client.
func (t *Transaction) Validate() error {
	if t.Customer.ID == "" || t.Customer.Name == "" {
		return NewValidationError("customer", "id and name are required")
	}
	if t.Therapist.ID == "" || t.Therapist.Name == "" {
		return NewValidationError("therapist", "id and name are required")
	}
	if len(t.Items) == 0 {
		return NewValidationError("items", "at least one item is required")
	}
	for i, it := range t.Items {
		if it.Name == "" {
			return NewValidationError("items", "item %d has no name", i)
		}
		if it.Price <= 0 {
			return NewValidationError("items", "item %q price must be positive", it.Name)
		}
		if it.Quantity <= 0 {
			return NewValidationError("items", "item %q quantity must be a positive integer", it.Name)
		}
	}
	if _, ok := NormalizePaymentMethod(t.PaymentMethod); !ok {
		return NewValidationError("payment_method", "must be one of cash, card, other")
	}
	if t.Subtotal <= 0 {
		return NewValidationError("subtotal", "must be a positive number")
	}
	if t.Discount < 0 {
		return NewValidationError("discount", "must not be negative")
	}
	if t.Discount > t.Subtotal+Epsilon {
		return NewValidationError("discount", "must not exceed subtotal %.2f", t.Subtotal)
	}
	if t.Total <= 0 {
		return NewValidationError("total", "must be a positive number")
	}

	if expected := t.ExpectedSubtotal(); math.Abs(expected-t.Subtotal) > Epsilon {
		return NewValidationError("subtotal", "expected %.2f, got %.2f", expected, t.Subtotal)
	}
	if expected := t.ExpectedTotal(); math.Abs(expected-t.Total) > Epsilon {
		return NewValidationError("total", "expected %.2f, got %.2f", expected, t.Total)
	}
	return nil
}
