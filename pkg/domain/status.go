package domain

import "strings"

// ApplicationStatus is the lifecycle stage of a tracked application.
type ApplicationStatus string

const (
	StatusSaved     ApplicationStatus = "saved"
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusRejected  ApplicationStatus = "rejected"
	StatusAccepted  ApplicationStatus = "accepted"
)

// AllStatuses lists every lifecycle stage, in order.
var AllStatuses = []ApplicationStatus{
	StatusSaved,
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusAccepted,
}

var statusLabels = map[ApplicationStatus]string{
	StatusSaved:     "Saved",
	StatusApplied:   "Applied",
	StatusInterview: "Interview",
	StatusOffer:     "Offer",
	StatusRejected:  "Rejected",
	StatusAccepted:  "Accepted",
}

// StatusLabel translates a raw status value into its display label.
// Matching is case-insensitive; unknown or empty values fall back to
// "Applied".
func StatusLabel(status string) string {
	if label, ok := statusLabels[ApplicationStatus(strings.ToLower(status))]; ok {
		return label
	}
	return "Applied"
}
