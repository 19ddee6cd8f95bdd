package routes

import (
	"github.com/clicktrip/clicktrip/pkg/settings"
	"github.com/gofiber/fiber/v2"
)

func SettingsRouter(router fiber.Router) {
	router.Get("/", getSettings)
	router.Post("/", saveSettings)
}

func getSettings(c *fiber.Ctx) error {
	return c.JSON(settings.FromCookieValue(c.Cookies(settings.CookieName)))
}

func saveSettings(c *fiber.Ctx) error {
	var userSettings settings.UserSettings
	if err := c.BodyParser(&userSettings); err != nil {
		return badRequest(c, "Body should be a JSON settings object")
	}

	if userSettings.RadiusMeters <= 0 || userSettings.TimeWindowMinutes <= 0 {
		return badRequest(c, "Settings radius and timeWindow should be positive")
	}

	c.Cookie(&fiber.Cookie{
		Name:     settings.CookieName,
		Value:    userSettings.CookieValue(),
		MaxAge:   int(settings.CookieMaxAge.Seconds()),
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.JSON(userSettings)
}
