package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

const collectionServices = "services"

type CatalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{col: db.Collection(collectionServices)}
}

func (r *CatalogRepository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	s.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	return s, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Service
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return &s, nil
}

func (r *CatalogRepository) List(ctx context.Context) ([]*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cur.Close(ctx)

	var services []*domain.Service
	if err := cur.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return services, nil
}

func (r *CatalogRepository) Update(ctx context.Context, s *domain.Service) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}
