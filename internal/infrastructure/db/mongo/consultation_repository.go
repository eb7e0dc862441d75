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

const collectionConsultations = "consultation_forms"

type ConsultationRepository struct {
	col *mongo.Collection
}

func NewConsultationRepository(db *mongo.Database) *ConsultationRepository {
	return &ConsultationRepository{col: db.Collection(collectionConsultations)}
}

func (r *ConsultationRepository) Create(ctx context.Context, f *domain.ConsultationForm) (*domain.ConsultationForm, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	f.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, f); err != nil {
		return nil, fmt.Errorf("insert consultation form: %w", err)
	}
	return f, nil
}

func (r *ConsultationRepository) FindByID(ctx context.Context, id string) (*domain.ConsultationForm, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.ConsultationForm
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConsultationNotFound
		}
		return nil, fmt.Errorf("find consultation form: %w", err)
	}
	return &f, nil
}

func (r *ConsultationRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domain.ConsultationForm, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if customerID != "" {
		query["customer_id"] = customerID
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list consultation forms: %w", err)
	}
	defer cur.Close(ctx)

	var forms []*domain.ConsultationForm
	if err := cur.All(ctx, &forms); err != nil {
		return nil, fmt.Errorf("decode consultation forms: %w", err)
	}
	return forms, nil
}

func (r *ConsultationRepository) Update(ctx context.Context, f *domain.ConsultationForm) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	if err != nil {
		return fmt.Errorf("update consultation form: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrConsultationNotFound
	}
	return nil
}

func (r *ConsultationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete consultation form: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrConsultationNotFound
	}
	return nil
}
