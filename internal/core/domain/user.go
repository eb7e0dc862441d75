package domain

import "time"

const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleOwner     = "owner"
	RoleTherapist = "therapist"
	RoleManager   = "manager"
)

// ValidRole reports whether role is one of the known staff roles.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleOwner, RoleTherapist, RoleManager:
		return true
	}
	return false
}

// User models a staff member who can log in. The password hash is never
// serialized into API responses.
type User struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Username       string    `json:"username" bson:"username"`
	Email          string    `json:"email" bson:"email"`
	PasswordHash   string    `json:"-" bson:"password_hash"`
	Name           string    `json:"name" bson:"name"`
	Role           string    `json:"role" bson:"role"`
	Active         bool      `json:"active" bson:"active"`
	EmploymentType string    `json:"employment_type,omitempty" bson:"employment_type,omitempty"`
	HourlyRate     float64   `json:"hourly_rate,omitempty" bson:"hourly_rate,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
