package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCookieValue(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected UserSettings
	}{
		{
			name:     "missing cookie",
			value:    "",
			expected: Default(),
		},
		{
			name:     "malformed cookie",
			value:    "{not json",
			expected: Default(),
		},
		{
			name:     "full cookie",
			value:    `{"radius":750,"timeWindow":45}`,
			expected: UserSettings{RadiusMeters: 750, TimeWindowMinutes: 45},
		},
		{
			name:     "partial cookie keeps defaults for the rest",
			value:    `{"radius":1000}`,
			expected: UserSettings{RadiusMeters: 1000, TimeWindowMinutes: 20},
		},
		{
			name:     "zero values fall back to defaults",
			value:    `{"radius":0,"timeWindow":0}`,
			expected: Default(),
		},
		{
			name:     "negative values fall back to defaults",
			value:    `{"radius":-5,"timeWindow":-1}`,
			expected: Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromCookieValue(tt.value))
		})
	}
}

func TestCookieValueRoundTrip(t *testing.T) {
	original := UserSettings{RadiusMeters: 650, TimeWindowMinutes: 30}

	assert.Equal(t, original, FromCookieValue(original.CookieValue()))
}

func TestDefault(t *testing.T) {
	assert.Equal(t, UserSettings{RadiusMeters: 500, TimeWindowMinutes: 20}, Default())
}
