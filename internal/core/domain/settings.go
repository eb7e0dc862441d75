package domain

import "time"

// Settings is the single mutable configuration document for the salon
// (branding and display preferences).
type Settings struct {
	ID           string    `json:"-" bson:"_id,omitempty"`
	BusinessName string    `json:"business_name,omitempty" bson:"business_name,omitempty"`
	LogoURL      string    `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	Currency     string    `json:"currency,omitempty" bson:"currency,omitempty"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
