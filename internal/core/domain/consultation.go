package domain

import "time"

const (
	ConsultationDraft     = "draft"
	ConsultationCompleted = "completed"
)

// ConsultationAnswer is one answered question on a consultation form.
type ConsultationAnswer struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// ConsultationForm is a health/consent questionnaire filled in for a
// customer. Completing a form triggers a best-effort update of the
// customer's last_consultation_form_date.
type ConsultationForm struct {
	ID          string               `json:"id" bson:"_id,omitempty"`
	CustomerID  string               `json:"customer_id" bson:"customer_id"`
	TherapistID string               `json:"therapist_id,omitempty" bson:"therapist_id,omitempty"`
	Status      string               `json:"status" bson:"status"`
	Answers     []ConsultationAnswer `json:"answers,omitempty" bson:"answers,omitempty"`
	CompletedAt *time.Time           `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" bson:"updated_at"`
}
