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

const collectionAppointments = "appointments"

type AppointmentRepository struct {
	col *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(collectionAppointments)}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	a.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, a); err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return a, nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Appointment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &a, nil
}

func (r *AppointmentRepository) List(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	timeRange := bson.M{}
	if !from.IsZero() {
		timeRange["$gte"] = from
	}
	if !to.IsZero() {
		timeRange["$lt"] = to
	}
	if len(timeRange) > 0 {
		query["start_time"] = timeRange
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cur.Close(ctx)

	var appts []*domain.Appointment
	if err := cur.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appts, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// FindOverlapping returns a scheduled appointment whose half-open interval
// intersects [start, end). The interval predicate is
// start_time < end AND end_time > start.
func (r *AppointmentRepository) FindOverlapping(ctx context.Context, start, end time.Time, excludeID string) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"status":     domain.AppointmentScheduled,
		"start_time": bson.M{"$lt": end},
		"end_time":   bson.M{"$gt": start},
	}
	if excludeID != "" {
		query["_id"] = bson.M{"$ne": excludeID}
	}

	var a domain.Appointment
	if err := r.col.FindOne(ctx, query).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find overlapping appointment: %w", err)
	}
	return &a, nil
}

// EnsureIndexes creates the calendar query index.
func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "start_time", Value: 1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
