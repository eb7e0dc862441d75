package service

import (
	"context"
	"time"

	"github.com/glowdesk/salon-api/internal/core/domain"
	"github.com/glowdesk/salon-api/internal/core/ports"
)

// SettingsService exposes the single mutable settings document.
type SettingsService struct {
	repo ports.SettingsRepository
}

func NewSettingsService(repo ports.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, settings *domain.Settings) (*domain.Settings, error) {
	settings.UpdatedAt = time.Now().UTC()
	return s.repo.Upsert(ctx, settings)
}
