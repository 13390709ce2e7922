package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

// InsertJob stores a new application and returns its generated id.
func (s *Store) InsertJob(ctx context.Context, job *domain.JobApplication) (string, error) {
	result, err := s.jobs().InsertOne(ctx, job)
	if err != nil {
		return "", fmt.Errorf("failed to insert job: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", result.InsertedID), nil
	}

	return id.Hex(), nil
}

// ListJobs returns all applications, optionally filtered by status. The
// internal id field is stripped from the results.
func (s *Store) ListJobs(ctx context.Context, status string) ([]domain.JobApplication, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetProjection(bson.M{"_id": 0})

	cursor, err := s.jobs().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}
	defer cursor.Close(ctx)

	jobs := []domain.JobApplication{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}

	return jobs, nil
}

// UpdateJob applies a partial update to the application with the given id.
// Returns ErrNotFound when no document matched.
func (s *Store) UpdateJob(ctx context.Context, id string, fields map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	// The assigned identity is immutable.
	delete(fields, "_id")

	result, err := s.jobs().UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteJobsOlderThan removes applications whose application_date is before
// the cutoff and returns the number of documents deleted.
func (s *Store) DeleteJobsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.jobs().DeleteMany(ctx, bson.M{
		"application_date": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete old jobs: %w", err)
	}

	return result.DeletedCount, nil
}

// CountJobs returns the total number of stored applications.
func (s *Store) CountJobs(ctx context.Context) (int64, error) {
	return s.jobs().CountDocuments(ctx, bson.M{})
}

// SampleJob returns an arbitrary stored application, or nil when the
// collection is empty.
func (s *Store) SampleJob(ctx context.Context) (map[string]interface{}, error) {
	var job map[string]interface{}
	err := s.jobs().FindOne(ctx, bson.M{}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sample job: %w", err)
	}
	return job, nil
}
