package domain

// CompanyCount is one bucket of the per-company application aggregation.
type CompanyCount struct {
	Company string `bson:"_id" json:"company"`
	Count   int64  `bson:"count" json:"count"`
}

// AnalyticsReport aggregates application and interview activity.
type AnalyticsReport struct {
	TotalApplications    int64            `json:"total_applications"`
	StatusDistribution   map[string]int64 `json:"status_distribution"`
	CompanyDistribution  []CompanyCount   `json:"company_distribution"`
	InterviewSuccessRate float64          `json:"interview_success_rate"`
}
