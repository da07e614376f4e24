// File: database/repository/booking/bookingMongoWatch.go
package bookingRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"dateplanner/models"
	"dateplanner/utils"
)

// SubscribeByInitiator streams snapshots of bookings created by the user.
func (r *MongoBookingRepo) SubscribeByInitiator(ctx context.Context, userID string) (<-chan []models.Booking, error) {
	return r.subscribe(ctx, "fromUserId", userID)
}

// SubscribeByCounterpart streams snapshots of bookings targeting the user.
func (r *MongoBookingRepo) SubscribeByCounterpart(ctx context.Context, userID string) (<-chan []models.Booking, error) {
	return r.subscribe(ctx, "targetUserId", userID)
}

// subscribe opens a change stream restricted to documents whose given field
// matches userID and re-queries the full matching set on every event. Each
// delivery is a complete snapshot; intermediate snapshots are coalesced when
// the consumer lags.
func (r *MongoBookingRepo) subscribe(ctx context.Context, field, userID string) (<-chan []models.Booking, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"fullDocument." + field: userID}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open change stream on %s: %w", field, err)
	}

	out := make(chan []models.Booking, 1)
	go func() {
		logger := utils.GetLogger()
		defer close(out)
		defer stream.Close(context.Background())

		// Eager initial snapshot so subscribers do not wait for the first write.
		if snap, err := r.listByField(field, userID); err != nil {
			logger.Warn("initial booking snapshot failed",
				zap.String("field", field), zap.String("userID", userID), zap.Error(err))
		} else {
			send(ctx, out, snap)
		}

		for stream.Next(ctx) {
			snap, err := r.listByField(field, userID)
			if err != nil {
				logger.Warn("booking snapshot re-query failed",
					zap.String("field", field), zap.String("userID", userID), zap.Error(err))
				continue
			}
			send(ctx, out, snap)
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			logger.Warn("booking change stream closed unexpectedly",
				zap.String("field", field), zap.String("userID", userID), zap.Error(err))
		}
	}()
	return out, nil
}

// send delivers a snapshot with latest-wins semantics: if the consumer has
// not drained the previous snapshot it is replaced, never queued behind.
func send(ctx context.Context, out chan []models.Booking, snap []models.Booking) {
	if ctx.Err() != nil {
		return
	}
	for {
		select {
		case out <- snap:
			return
		default:
		}
		select {
		case <-out:
		default:
		}
	}
}
