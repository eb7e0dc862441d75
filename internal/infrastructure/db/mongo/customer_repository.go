package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glowdesk/salon-api/internal/core/domain"
)

const collectionCustomers = "customers"

type CustomerRepository struct {
	col *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{col: db.Collection(collectionCustomers)}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCustomerExists
		}
		return nil, fmt.Errorf("insert customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Customer
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer cur.Close(ctx)

	var customers []*domain.Customer
	if err := cur.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCustomerExists
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// SetLastVisit refreshes the denormalized last_visit field only when the new
// timestamp is later than the stored one, so out-of-order jobs are harmless.
func (r *CustomerRepository) SetLastVisit(ctx context.Context, id string, ts time.Time) error {
	return r.setDateField(ctx, id, "last_visit", ts)
}

func (r *CustomerRepository) SetLastConsultationDate(ctx context.Context, id string, ts time.Time) error {
	return r.setDateField(ctx, id, "last_consultation_form_date", ts)
}

func (r *CustomerRepository) setDateField(ctx context.Context, id, field string, ts time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$max": bson.M{field: ts}},
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index.
func (r *CustomerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
