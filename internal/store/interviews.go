package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

// InsertInterview stores a scheduled interview and returns its generated id.
func (s *Store) InsertInterview(ctx context.Context, interview *domain.Interview) (string, error) {
	result, err := s.interviews().InsertOne(ctx, interview)
	if err != nil {
		return "", fmt.Errorf("failed to insert interview: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", result.InsertedID), nil
	}

	return id.Hex(), nil
}

// ListInterviews returns interviews, optionally bounded to a date range.
// Both bounds must be set for the range filter to apply.
func (s *Store) ListInterviews(ctx context.Context, start, end *time.Time) ([]domain.Interview, error) {
	filter := bson.M{}
	if start != nil && end != nil {
		filter["date"] = bson.M{"$gte": *start, "$lte": *end}
	}

	opts := options.Find().SetProjection(bson.M{"_id": 0})

	cursor, err := s.interviews().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find interviews: %w", err)
	}
	defer cursor.Close(ctx)

	interviews := []domain.Interview{}
	if err := cursor.All(ctx, &interviews); err != nil {
		return nil, fmt.Errorf("failed to decode interviews: %w", err)
	}

	return interviews, nil
}
