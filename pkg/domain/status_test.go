package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected string
	}{
		{
			name:     "lowercase",
			status:   "rejected",
			expected: "Rejected",
		},
		{
			name:     "uppercase",
			status:   "REJECTED",
			expected: "Rejected",
		},
		{
			name:     "mixed case",
			status:   "InterView",
			expected: "Interview",
		},
		{
			name:     "saved",
			status:   "saved",
			expected: "Saved",
		},
		{
			name:     "offer",
			status:   "offer",
			expected: "Offer",
		},
		{
			name:     "accepted",
			status:   "accepted",
			expected: "Accepted",
		},
		{
			name:     "applied",
			status:   "applied",
			expected: "Applied",
		},
		{
			name:     "empty defaults to Applied",
			status:   "",
			expected: "Applied",
		},
		{
			name:     "unknown defaults to Applied",
			status:   "unknown",
			expected: "Applied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusLabel(tt.status))
		})
	}
}
