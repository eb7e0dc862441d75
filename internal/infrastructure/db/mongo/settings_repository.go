package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

const collectionSettings = "settings"

// settingsDocID pins the single settings record to a fixed _id so Get and
// Upsert always address the same document.
const settingsDocID = "salon"

type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

// Get returns the settings document, or an empty Settings when none has been
// saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Settings
	if err := r.col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &domain.Settings{ID: settingsDocID}, nil
		}
		return nil, fmt.Errorf("find settings: %w", err)
	}
	return &s, nil
}

func (r *SettingsRepository) Upsert(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	s.ID = settingsDocID
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, s, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return s, nil
}
