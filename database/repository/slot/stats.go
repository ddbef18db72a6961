package slotRepo

import (
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Stats aggregates slot counts per status plus the projected revenue of all
// current occupancies (hourly rate times hours parked so far, rounded up).
func (r *MongoSlotRepo) Stats() (*models.SlotStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	countPipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate slot status counts: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode slot status counts: %w", err)
	}

	stats := &models.SlotStats{StatusCounts: make(map[string]int64, len(counts))}
	for _, c := range counts {
		stats.StatusCounts[c.Status] = c.Count
	}

	revenuePipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"status":   models.SlotStatusOccupied,
			"bookedAt": bson.M{"$exists": true},
		}}},
		{{Key: "$project", Value: bson.M{
			"hourlyRate": 1,
			"hoursParked": bson.M{
				"$divide": bson.A{
					bson.M{"$subtract": bson.A{time.Now(), "$bookedAt"}},
					1000 * 60 * 60,
				},
			},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": nil,
			"totalRevenue": bson.M{
				"$sum": bson.M{
					"$multiply": bson.A{"$hourlyRate", bson.M{"$ceil": "$hoursParked"}},
				},
			},
		}}},
	}

	revCursor, err := r.coll.Aggregate(ctx, revenuePipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate slot revenue: %w", err)
	}
	defer revCursor.Close(ctx)

	var revenue []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := revCursor.All(ctx, &revenue); err != nil {
		return nil, fmt.Errorf("failed to decode slot revenue: %w", err)
	}
	if len(revenue) > 0 {
		stats.TotalRevenue = revenue[0].TotalRevenue
	}

	return stats, nil
}
