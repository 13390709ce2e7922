package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

// Analytics aggregates application counts by status and company plus the
// completed-interview ratio.
func (s *Store) Analytics(ctx context.Context) (domain.AnalyticsReport, error) {
	report := domain.AnalyticsReport{
		StatusDistribution:  map[string]int64{},
		CompanyDistribution: []domain.CompanyCount{},
	}

	total, err := s.jobs().CountDocuments(ctx, bson.M{})
	if err != nil {
		return report, fmt.Errorf("failed to count applications: %w", err)
	}
	report.TotalApplications = total

	for _, status := range domain.AllStatuses {
		count, err := s.jobs().CountDocuments(ctx, bson.M{"status": string(status)})
		if err != nil {
			return report, fmt.Errorf("failed to count applications with status %s: %w", status, err)
		}
		report.StatusDistribution[string(status)] = count
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$company_name"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := s.jobs().Aggregate(ctx, pipeline)
	if err != nil {
		return report, fmt.Errorf("failed to aggregate by company: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &report.CompanyDistribution); err != nil {
		return report, fmt.Errorf("failed to decode company aggregation: %w", err)
	}

	totalInterviews, err := s.interviews().CountDocuments(ctx, bson.M{})
	if err != nil {
		return report, fmt.Errorf("failed to count interviews: %w", err)
	}

	if totalInterviews > 0 {
		completed, err := s.interviews().CountDocuments(ctx, bson.M{"status": domain.InterviewCompleted})
		if err != nil {
			return report, fmt.Errorf("failed to count completed interviews: %w", err)
		}
		report.InterviewSuccessRate = float64(completed) / float64(totalInterviews) * 100
	}

	return report, nil
}
