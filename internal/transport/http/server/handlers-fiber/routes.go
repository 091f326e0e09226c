package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterHandlers mounts the API routes on the router.
func RegisterHandlers(r fiber.Router, h *Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, world!")
	})
	r.Post("/users", h.PostUsers)
	r.Get("/superusers", h.GetSuperusers)
	r.Get("/top-countries", h.GetTopCountries)
	r.Get("/team-insights", h.GetTeamInsights)
	r.Get("/active-users-per-day", h.GetActiveUsersPerDay)
	r.Get("/evaluation", h.GetEvaluation)
}
