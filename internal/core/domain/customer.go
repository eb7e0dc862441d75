package domain

import "time"

// Customer is a salon client record. LastVisit and LastConsultationFormDate
// are denormalized fields maintained asynchronously; the transaction and
// consultation collections remain the source of truth.
type Customer struct {
	ID                       string     `json:"id" bson:"_id,omitempty"`
	Name                     string     `json:"name" bson:"name"`
	Email                    string     `json:"email" bson:"email"`
	Phone                    string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Address                  string     `json:"address,omitempty" bson:"address,omitempty"`
	Notes                    string     `json:"notes,omitempty" bson:"notes,omitempty"`
	Active                   bool       `json:"active" bson:"active"`
	LastVisit                *time.Time `json:"last_visit,omitempty" bson:"last_visit,omitempty"`
	LastConsultationFormDate *time.Time `json:"last_consultation_form_date,omitempty" bson:"last_consultation_form_date,omitempty"`
	CreatedAt                time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at" bson:"updated_at"`
}
