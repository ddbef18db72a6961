package bookingRepo

import (
	"context"
	"fmt"
	"math"
	"time"

	"parkwise/database"
	"parkwise/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB. It also holds
// the slot collection so the transactional operations can touch both
// collections in one session.
type MongoBookingRepo struct {
	coll     *mongo.Collection
	slotColl *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		coll:     db.Collection("bookings"),
		slotColl: db.Collection("parking_slots"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// partial unique index on slotId enforces at most one active booking per slot
// at the storage layer.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{
			Keys: bson.D{{Key: "slotId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.BookingStatusActive}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document as active with payment pending.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	prepareBooking(booking)
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// prepareBooking stamps identity, lifecycle defaults and timestamps.
func prepareBooking(booking *models.Booking) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now()
	if booking.StartTime.IsZero() {
		booking.StartTime = now
	}
	booking.Status = models.BookingStatusActive
	booking.PaymentStatus = models.PaymentStatusPending
	booking.CreatedAt = now
	booking.UpdatedAt = now
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetByUser retrieves all bookings for a user, newest first.
func (r *MongoBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(bson.M{"userId": userID}, opts)
}

// GetActive retrieves all active bookings.
func (r *MongoBookingRepo) GetActive() ([]models.Booking, error) {
	return r.find(bson.M{"status": models.BookingStatusActive}, options.Find())
}

// FindActiveBySlot retrieves the open booking for a slot, if any. Overstay
// bookings are still open: the vehicle has not checked out yet.
func (r *MongoBookingRepo) FindActiveBySlot(slotID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"slotId": slotID,
		"status": bson.M{"$in": bson.A{models.BookingStatusActive, models.BookingStatusOverstay}},
	}

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch active booking for slot %s: %w", slotID, err)
	}
	return &booking, nil
}

// GetHistory retrieves the most recent bookings, newest first.
func (r *MongoBookingRepo) GetHistory(limit int64) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	return r.find(bson.M{}, opts)
}

func (r *MongoBookingRepo) find(filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// Complete closes a booking: computes the actual duration (whole hours,
// rounded up, minimum one) and total amount, and marks it completed and paid.
// Returns (nil, nil) when the booking does not exist.
func (r *MongoBookingRepo) Complete(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, nil
	}

	endTime := time.Now()
	update := completionUpdate(booking, endTime)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var completed models.Booking
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&completed); err != nil {
		return nil, fmt.Errorf("failed to complete booking with id %s: %w", id, err)
	}
	return &completed, nil
}

// completionUpdate builds the $set closing a booking at endTime.
func completionUpdate(booking *models.Booking, endTime time.Time) bson.M {
	actualDuration := int(math.Ceil(endTime.Sub(booking.StartTime).Hours()))
	if actualDuration < 1 {
		actualDuration = 1
	}
	totalAmount := float64(actualDuration) * booking.HourlyRate

	return bson.M{
		"$set": bson.M{
			"endTime":        endTime,
			"actualDuration": actualDuration,
			"totalAmount":    totalAmount,
			"status":         models.BookingStatusCompleted,
			"paymentStatus":  models.PaymentStatusPaid,
			"updatedAt":      endTime,
		},
	}
}

// MarkOverstays flags active bookings whose expected end has passed. The
// overstay status is informational: completion still works the same way.
func (r *MongoBookingRepo) MarkOverstays() (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{
		"status": models.BookingStatusActive,
		"$expr": bson.M{
			"$lt": bson.A{
				bson.M{"$add": bson.A{
					"$startTime",
					bson.M{"$multiply": bson.A{"$expectedDuration", 1000 * 60 * 60}},
				}},
				now,
			},
		},
	}
	update := bson.M{"$set": bson.M{
		"status":    models.BookingStatusOverstay,
		"updatedAt": now,
	}}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overstay bookings: %w", err)
	}
	return result.ModifiedCount, nil
}
