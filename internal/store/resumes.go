package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

// InsertResume stores a new resume version and returns its generated id.
func (s *Store) InsertResume(ctx context.Context, resume *domain.Resume) (string, error) {
	result, err := s.resumes().InsertOne(ctx, resume)
	if err != nil {
		return "", fmt.Errorf("failed to insert resume: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", result.InsertedID), nil
	}

	return id.Hex(), nil
}

// ListResumesByCompany returns all resume versions stored for a company.
func (s *Store) ListResumesByCompany(ctx context.Context, companyName string) ([]domain.Resume, error) {
	return s.findResumes(ctx, bson.M{"company_name": companyName})
}

// ListAllResumes returns every stored resume version.
func (s *Store) ListAllResumes(ctx context.Context) ([]domain.Resume, error) {
	return s.findResumes(ctx, bson.M{})
}

func (s *Store) findResumes(ctx context.Context, filter bson.M) ([]domain.Resume, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})

	cursor, err := s.resumes().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find resumes: %w", err)
	}
	defer cursor.Close(ctx)

	resumes := []domain.Resume{}
	if err := cursor.All(ctx, &resumes); err != nil {
		return nil, fmt.Errorf("failed to decode resumes: %w", err)
	}

	return resumes, nil
}
