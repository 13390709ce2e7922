package onedrive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean name unchanged",
			input:    "Acme Corp",
			expected: "Acme Corp",
		},
		{
			name:     "slash replaced",
			input:    "Frontend/Backend Engineer",
			expected: "Frontend-Backend Engineer",
		},
		{
			name:     "every reserved character replaced",
			input:    `a\b/c:d*e?f"g<h>i|j`,
			expected: "a-b-c-d-e-f-g-h-i-j",
		},
		{
			name:     "only reserved characters",
			input:    `\/:*?"<>|`,
			expected: "---------",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "unicode preserved",
			input:    "Müller & Söhne GmbH",
			expected: "Müller & Söhne GmbH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeName(tt.input))
		})
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	inputs := []string{
		`C:\Users\me`,
		"plain name",
		`a?b*c`,
		"",
	}

	for _, input := range inputs {
		once := SanitizeName(input)
		assert.Equal(t, once, SanitizeName(once))
	}
}

func TestSanitizeNameRemovesAllReserved(t *testing.T) {
	out := SanitizeName(`report: Q1/Q2 *final* "draft" <v2> a|b \end?`)
	assert.NotContains(t, out, `\`)
	for _, reserved := range `/:*?"<>|` {
		assert.NotContains(t, out, string(reserved))
	}
}
