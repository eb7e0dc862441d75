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
	"github.com/glowdesk/salon-api/internal/core/ports"
)

const collectionTransactions = "transactions"

// TransactionRepository persists immutable sale records. It intentionally
// implements no update or delete.
type TransactionRepository struct {
	col *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{col: db.Collection(collectionTransactions)}
}

func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	t.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return t, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Transaction
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return &t, nil
}

// List returns transactions matching filter, newest first.
func (r *TransactionRepository) List(ctx context.Context, filter ports.TransactionFilter) ([]*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	dateRange := bson.M{}
	if !filter.From.IsZero() {
		dateRange["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		dateRange["$lte"] = filter.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	if filter.TherapistID != "" {
		query["therapist.id"] = filter.TherapistID
	}
	if filter.CustomerID != "" {
		query["customer.id"] = filter.CustomerID
	}
	if filter.Category != "" {
		query["items.category"] = filter.Category
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer cur.Close(ctx)

	var txs []*domain.Transaction
	if err := cur.All(ctx, &txs); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return txs, nil
}

// EnsureIndexes creates the query indexes for reporting filters.
func (r *TransactionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "therapist.id", Value: 1}}},
		{Keys: bson.D{{Key: "customer.id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
