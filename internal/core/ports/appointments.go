package ports

import (
	"context"
	"time"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

// AppointmentRepository defines persistence operations for bookings.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) error
	Delete(ctx context.Context, id string) error
	// FindOverlapping returns any appointment whose [start_time, end_time)
	// interval intersects [start, end), excluding excludeID. Returns
	// domain.ErrAppointmentNotFound when the slot is free.
	FindOverlapping(ctx context.Context, start, end time.Time, excludeID string) (*domain.Appointment, error)
}

// AppointmentService defines use-case operations for bookings.
type AppointmentService interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	Get(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	Update(ctx context.Context, id string, a *domain.Appointment) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}
