package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Resume is a stored resume version tied to a company.
type Resume struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CompanyName string             `bson:"company_name" json:"company_name"`
	Version     string             `bson:"version" json:"version"`
	FileURL     string             `bson:"file_url" json:"file_url"`
	CreatedAt   *time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
}
