package settings

import (
	"encoding/json"
	"time"
)

// CookieName is the client-side cookie the viewer settings live in.
const CookieName = "clicktrip-settings"

// CookieMaxAge keeps the cookie for a year.
const CookieMaxAge = 365 * 24 * time.Hour

// UserSettings are the per-user viewer preferences. They only ever live in
// the cookie; the server holds no per-user state.
type UserSettings struct {
	RadiusMeters      int `json:"radius"`
	TimeWindowMinutes int `json:"timeWindow"`
}

func Default() UserSettings {
	return UserSettings{
		RadiusMeters:      500,
		TimeWindowMinutes: 20,
	}
}

// FromCookieValue parses a settings cookie. A missing, malformed or partial
// cookie degrades to the defaults, never an error.
func FromCookieValue(value string) UserSettings {
	parsed := Default()

	if value == "" {
		return parsed
	}

	var stored UserSettings
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		return Default()
	}

	if stored.RadiusMeters > 0 {
		parsed.RadiusMeters = stored.RadiusMeters
	}
	if stored.TimeWindowMinutes > 0 {
		parsed.TimeWindowMinutes = stored.TimeWindowMinutes
	}

	return parsed
}

func (s UserSettings) CookieValue() string {
	value, _ := json.Marshal(s)

	return string(value)
}
