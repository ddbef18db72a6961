package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookSlotTx books a slot and inserts its booking record inside a single
// Mongo transaction, so the slot state and the ledger cannot diverge. The
// conditional slot update still carries the availability precondition: when it
// matches nothing the whole transaction aborts with ErrSlotUnavailable.
func (r *MongoBookingRepo) BookSlotTx(
	ctx context.Context,
	slotID string,
	occ models.SlotOccupancy,
	booking *models.Booking,
) (*models.ParkingSlot, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var bookedSlot models.ParkingSlot

	txnFn := func(sc mongo.SessionContext) error {
		now := time.Now()
		filter := bson.M{"id": slotID, "status": models.SlotStatusAvailable}
		update := bson.M{
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
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		if err := r.slotColl.FindOneAndUpdate(sc, filter, update, opts).Decode(&bookedSlot); err != nil {
			if err == mongo.ErrNoDocuments {
				return ErrSlotUnavailable
			}
			return fmt.Errorf("conditional slot update failed: %w", err)
		}

		prepareBooking(booking)
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotUnavailable {
			return nil, err
		}
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	return &bookedSlot, nil
}

// FreeSlotTx completes the booking (when bookingID is non-empty) and frees
// the slot inside a single Mongo transaction.
func (r *MongoBookingRepo) FreeSlotTx(ctx context.Context, slotID string, bookingID string) (*models.ParkingSlot, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var freedSlot models.ParkingSlot

	txnFn := func(sc mongo.SessionContext) error {
		now := time.Now()

		if bookingID != "" {
			var booking models.Booking
			if err := r.coll.FindOne(sc, bson.M{"id": bookingID}).Decode(&booking); err != nil {
				return fmt.Errorf("fetch booking failed: %w", err)
			}
			update := completionUpdate(&booking, now)
			if _, err := r.coll.UpdateOne(sc, bson.M{"id": bookingID}, update); err != nil {
				return fmt.Errorf("complete booking failed: %w", err)
			}
		}

		slotUpdate := bson.M{
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
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		if err := r.slotColl.FindOneAndUpdate(sc, bson.M{"id": slotID}, slotUpdate, opts).Decode(&freedSlot); err != nil {
			return fmt.Errorf("free slot failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, fmt.Errorf("free transaction failed: %w", err)
	}

	return &freedSlot, nil
}
