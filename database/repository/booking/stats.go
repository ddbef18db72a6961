package bookingRepo

import (
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Stats aggregates the booking ledger with a single $facet pipeline: total
// and active counts, today's bookings, and revenue over completed bookings.
func (r *MongoBookingRepo) Stats() (*models.BookingStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	// Today starts at midnight in the server's location, not on UTC ticks.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	pipeline := mongo.Pipeline{
		{{Key: "$facet", Value: bson.M{
			"totalBookings": bson.A{bson.M{"$count": "count"}},
			"activeBookings": bson.A{
				bson.M{"$match": bson.M{"status": models.BookingStatusActive}},
				bson.M{"$count": "count"},
			},
			"todayBookings": bson.A{
				bson.M{"$match": bson.M{"createdAt": bson.M{"$gte": today}}},
				bson.M{"$count": "count"},
			},
			"totalRevenue": bson.A{
				bson.M{"$match": bson.M{"status": models.BookingStatusCompleted}},
				bson.M{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$totalAmount"}}},
			},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}
	defer cursor.Close(ctx)

	type countFacet struct {
		Count int64 `bson:"count"`
	}
	type revenueFacet struct {
		Total float64 `bson:"total"`
	}
	var results []struct {
		TotalBookings  []countFacet   `bson:"totalBookings"`
		ActiveBookings []countFacet   `bson:"activeBookings"`
		TodayBookings  []countFacet   `bson:"todayBookings"`
		TotalRevenue   []revenueFacet `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode booking stats: %w", err)
	}

	stats := &models.BookingStats{}
	if len(results) == 0 {
		return stats, nil
	}
	facets := results[0]
	if len(facets.TotalBookings) > 0 {
		stats.TotalBookings = facets.TotalBookings[0].Count
	}
	if len(facets.ActiveBookings) > 0 {
		stats.ActiveBookings = facets.ActiveBookings[0].Count
	}
	if len(facets.TodayBookings) > 0 {
		stats.TodayBookings = facets.TodayBookings[0].Count
	}
	if len(facets.TotalRevenue) > 0 {
		stats.TotalRevenue = facets.TotalRevenue[0].Total
	}
	return stats, nil
}
