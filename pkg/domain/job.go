package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobApplication is a single tracked application as submitted by the
// extension or the dashboard. Identity is assigned by the store on insert
// and never changes afterwards.
type JobApplication struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CompanyName     string             `bson:"company_name" json:"company_name"`
	JobTitle        string             `bson:"job_title" json:"job_title"`
	JobURL          string             `bson:"job_url" json:"job_url"`
	ApplicationDate *time.Time         `bson:"application_date,omitempty" json:"application_date,omitempty"`
	Status          string             `bson:"status" json:"status"`

	Notes             string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Location          string     `bson:"location,omitempty" json:"location,omitempty"`
	Salary            string     `bson:"salary,omitempty" json:"salary,omitempty"`
	JobType           string     `bson:"job_type,omitempty" json:"job_type,omitempty"`
	ExperienceLevel   string     `bson:"experience_level,omitempty" json:"experience_level,omitempty"`
	Skills            []string   `bson:"skills,omitempty" json:"skills,omitempty"`
	CompanyWebsite    string     `bson:"company_website,omitempty" json:"company_website,omitempty"`
	ContactPerson     string     `bson:"contact_person,omitempty" json:"contact_person,omitempty"`
	ContactEmail      string     `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	InterviewDate     *time.Time `bson:"interview_date,omitempty" json:"interview_date,omitempty"`
	FollowUpDate      *time.Time `bson:"follow_up_date,omitempty" json:"follow_up_date,omitempty"`
	RejectionReason   string     `bson:"rejection_reason,omitempty" json:"rejection_reason,omitempty"`
	OfferAmount       string     `bson:"offer_amount,omitempty" json:"offer_amount,omitempty"`
	Benefits          []string   `bson:"benefits,omitempty" json:"benefits,omitempty"`
	WorkMode          string     `bson:"work_mode,omitempty" json:"work_mode,omitempty"`
	ApplicationMethod string     `bson:"application_method,omitempty" json:"application_method,omitempty"`
	Source            string     `bson:"source,omitempty" json:"source,omitempty"`
	Tags              []string   `bson:"tags,omitempty" json:"tags,omitempty"`
	JobDescription    string     `bson:"job_description,omitempty" json:"job_description,omitempty"`
}
