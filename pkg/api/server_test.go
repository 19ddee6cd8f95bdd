package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clicktrip/clicktrip/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getJson(t *testing.T, response *http.Response) map[string]any {
	t.Helper()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(body, &parsed))

	return parsed
}

func TestAPIVersion(t *testing.T) {
	app := CreateServer()

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/version", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "v0.1", getJson(t, response)["version"])
}

func TestGetSettingsDefaults(t *testing.T) {
	app := CreateServer()

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/settings", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, response.StatusCode)

	body := getJson(t, response)
	assert.Equal(t, float64(500), body["radius"])
	assert.Equal(t, float64(20), body["timeWindow"])
}

func TestGetSettingsFromCookie(t *testing.T) {
	app := CreateServer()

	request := httptest.NewRequest(http.MethodGet, "/core/settings", nil)
	request.AddCookie(&http.Cookie{
		Name:  settings.CookieName,
		Value: `{"radius":800,"timeWindow":35}`,
	})

	response, err := app.Test(request)
	require.NoError(t, err)

	body := getJson(t, response)
	assert.Equal(t, float64(800), body["radius"])
	assert.Equal(t, float64(35), body["timeWindow"])
}

func TestSaveSettings(t *testing.T) {
	app := CreateServer()

	request := httptest.NewRequest(http.MethodPost, "/core/settings", strings.NewReader(`{"radius":650,"timeWindow":30}`))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, response.StatusCode)

	var settingsCookie *http.Cookie
	for _, cookie := range response.Cookies() {
		if cookie.Name == settings.CookieName {
			settingsCookie = cookie
		}
	}

	require.NotNil(t, settingsCookie)
	assert.Equal(t, settings.UserSettings{RadiusMeters: 650, TimeWindowMinutes: 30}, settings.FromCookieValue(settingsCookie.Value))
	assert.Equal(t, int(settings.CookieMaxAge.Seconds()), settingsCookie.MaxAge)
}

func TestSaveSettingsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "radius=650"},
		{"zero radius", `{"radius":0,"timeWindow":30}`},
		{"negative window", `{"radius":500,"timeWindow":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := CreateServer()

			request := httptest.NewRequest(http.MethodPost, "/core/settings", strings.NewReader(tt.body))
			request.Header.Set("Content-Type", "application/json")

			response, err := app.Test(request)
			require.NoError(t, err)

			assert.Equal(t, http.StatusBadRequest, response.StatusCode)
			assert.NotEmpty(t, getJson(t, response)["error"])
		})
	}
}

func TestNearbyTransitValidation(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"missing coordinates", "/core/nearby_transit"},
		{"missing longitude", "/core/nearby_transit?lat=49.28"},
		{"non-numeric latitude", "/core/nearby_transit?lat=abc&lon=-123.12"},
		{"bad radius", "/core/nearby_transit?lat=49.28&lon=-123.12&radius=-5"},
		{"bad vehicle radius", "/core/nearby_transit?lat=49.28&lon=-123.12&vehicle_radius=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := CreateServer()

			response, err := app.Test(httptest.NewRequest(http.MethodGet, tt.url, nil))
			require.NoError(t, err)

			assert.Equal(t, http.StatusBadRequest, response.StatusCode)
			assert.NotEmpty(t, getJson(t, response)["error"])
		})
	}
}

func TestWalkingTimeValidation(t *testing.T) {
	app := CreateServer()

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/walking_time?from_lat=49.28&from_lon=-123.12&to_lat=49.30", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestGeocodeValidation(t *testing.T) {
	app := CreateServer()

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/core/geocode", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}
