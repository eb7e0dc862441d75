package domain

import "time"

// Service is a priced catalog entry (a treatment or product the salon sells).
type Service struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Name            string    `json:"name" bson:"name"`
	Category        string    `json:"category" bson:"category"`
	Price           float64   `json:"price" bson:"price"`
	DurationMinutes int       `json:"duration_minutes,omitempty" bson:"duration_minutes,omitempty"`
	Active          bool      `json:"active" bson:"active"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
