package slotRepo

import (
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// bookFilter matches a slot only while it is still available. Two concurrent
// Book calls race on this filter and exactly one of them matches.
func bookFilter(id string) bson.M {
	return bson.M{"id": id, "status": models.SlotStatusAvailable}
}

func bookUpdate(occ models.SlotOccupancy, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"status":           models.SlotStatusOccupied,
			"bookedBy":         occ.BookedBy,
			"bookedByUserId":   occ.BookedByUserID,
			"vehicleNumber":    occ.VehicleNumber,
			"vehicleType":      occ.VehicleType,
			"bookedAt":         now,
			"expectedCheckout": occ.ExpectedCheckout,
			"updatedAt":        now,
		},
	}
}

func freeUpdate(now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"status":    models.SlotStatusAvailable,
			"updatedAt": now,
		},
		"$unset": bson.M{
			"bookedBy":         "",
			"bookedByUserId":   "",
			"vehicleNumber":    "",
			"vehicleType":      "",
			"bookedAt":         "",
			"expectedCheckout": "",
		},
	}
}

// Book atomically transitions an available slot to occupied. It returns
// (nil, nil) when the slot is no longer available, which callers treat as a
// lost race.
func (r *MongoSlotRepo) Book(id string, occ models.SlotOccupancy) (*models.ParkingSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.ParkingSlot
	err := r.coll.FindOneAndUpdate(ctx, bookFilter(id), bookUpdate(occ, time.Now()), opts).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to book slot with id %s: %w", id, err)
	}
	return &slot, nil
}

// Free unconditionally resets a slot to available, clearing every occupancy
// field.
func (r *MongoSlotRepo) Free(id string) (*models.ParkingSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.ParkingSlot
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, freeUpdate(time.Now()), opts).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to free slot with id %s: %w", id, err)
	}
	return &slot, nil
}

// Block marks a slot blocked. The reason is kept in bookedBy as the
// maintenance marker; all vehicle and user fields are cleared. The filter
// excludes occupied slots so a booking that lands concurrently wins the race
// and the block returns (nil, nil).
func (r *MongoSlotRepo) Block(id string, reason string) (*models.ParkingSlot, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"id": id, "status": bson.M{"$ne": models.SlotStatusOccupied}}
	update := bson.M{
		"$set": bson.M{
			"status":    models.SlotStatusBlocked,
			"bookedBy":  reason,
			"bookedAt":  now,
			"updatedAt": now,
		},
		"$unset": bson.M{
			"bookedByUserId":   "",
			"vehicleNumber":    "",
			"vehicleType":      "",
			"expectedCheckout": "",
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.ParkingSlot
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to block slot with id %s: %w", id, err)
	}
	return &slot, nil
}
