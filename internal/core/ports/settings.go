package ports

import (
	"context"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

// SettingsRepository stores the single settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) (*domain.Settings, error)
}

// SettingsService exposes the settings document to the API layer.
type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) (*domain.Settings, error)
}
