package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interview is a scheduled or completed interview round for an application.
type Interview struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	JobID            string             `bson:"job_id" json:"job_id"`
	CompanyName      string             `bson:"company_name" json:"company_name"`
	Date             time.Time          `bson:"date" json:"date"`
	Type             string             `bson:"type" json:"type"`
	Notes            string             `bson:"notes,omitempty" json:"notes,omitempty"`
	PreparationNotes string             `bson:"preparation_notes,omitempty" json:"preparation_notes,omitempty"`
	Status           string             `bson:"status" json:"status"`
}

// Interview status values.
const (
	InterviewScheduled = "scheduled"
	InterviewCompleted = "completed"
	InterviewCancelled = "cancelled"
)
