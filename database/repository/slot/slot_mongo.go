package slotRepo

import (
	"context"
	"fmt"
	"time"

	"parkwise/database"
	"parkwise/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSlotRepo implements SlotRepository using MongoDB.
type MongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo creates a new instance of SlotRepository using MongoDB.
func NewMongoSlotRepo() SlotRepository {
	coll := database.DB().Collection("parking_slots")
	repo := &MongoSlotRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoSlotRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new slot document, rejecting duplicate slot numbers.
func (r *MongoSlotRepo) Create(slot *models.ParkingSlot) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	existing, err := r.GetByNumber(slot.Number)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateNumber
	}

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if slot.Status == "" {
		slot.Status = models.SlotStatusAvailable
	}
	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		// The unique index closes the race the lookup above leaves open.
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateNumber
		}
		return fmt.Errorf("failed to create slot: %w", err)
	}
	return nil
}

// GetAll retrieves all slots sorted by number.
func (r *MongoSlotRepo) GetAll() ([]models.ParkingSlot, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.ParkingSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return slots, nil
}

// GetByID retrieves a slot by its unique ID.
func (r *MongoSlotRepo) GetByID(id string) (*models.ParkingSlot, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByNumber retrieves a slot by its human-readable number.
func (r *MongoSlotRepo) GetByNumber(number string) (*models.ParkingSlot, error) {
	return r.findOne(bson.M{"number": number})
}

func (r *MongoSlotRepo) findOne(filter bson.M) (*models.ParkingSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var slot models.ParkingSlot
	if err := r.coll.FindOne(ctx, filter).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch slot: %w", err)
	}
	return &slot, nil
}

// GetByStatus retrieves all slots with the given status.
func (r *MongoSlotRepo) GetByStatus(status string) ([]models.ParkingSlot, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve slots with status %s: %w", status, err)
	}
	defer cursor.Close(ctx)

	var slots []models.ParkingSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return slots, nil
}

// Update applies an arbitrary field patch and returns the updated document.
func (r *MongoSlotRepo) Update(id string, patch bson.M) (*models.ParkingSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	patch["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.ParkingSlot
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": patch}, opts).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update slot with id %s: %w", id, err)
	}
	return &slot, nil
}

// Delete removes a slot document unless the slot is occupied.
func (r *MongoSlotRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	slot, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if slot != nil && slot.Status == models.SlotStatusOccupied {
		return ErrOccupied
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete slot with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("slot with id %s not found", id)
	}
	return nil
}
