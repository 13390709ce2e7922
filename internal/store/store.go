package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const databaseName = "job_tracker"

const (
	jobsCollection       = "jobs"
	resumesCollection    = "resumes"
	interviewsCollection = "interviews"
)

// ErrNotFound indicates that an update or lookup matched no document.
var ErrNotFound = errors.New("document not found")

// ErrInvalidID indicates that a supplied document id is not a valid
// ObjectID.
var ErrInvalidID = errors.New("invalid document id")

// Store wraps the MongoDB client and the job-tracker collections. One Store
// is constructed at process start and shared across all handlers.
type Store struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect establishes the MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Store{
		client:   client,
		database: client.Database(databaseName),
	}, nil
}

// Ping verifies the connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) jobs() *mongo.Collection {
	return s.database.Collection(jobsCollection)
}

func (s *Store) resumes() *mongo.Collection {
	return s.database.Collection(resumesCollection)
}

func (s *Store) interviews() *mongo.Collection {
	return s.database.Collection(interviewsCollection)
}
