package handlers_fiber

import (
	"fmt"
	"net/http"
	"strconv"

	"users-insights/internal/entities"
	"users-insights/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetSuperusers returns active users with score >= 900.
func (h *Handler) GetSuperusers(c *fiber.Ctx) error {
	res, err := h.uc.Superusers(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to get superusers", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToSuperusersResponse(res))
}

// GetTopCountries returns the five countries with most users.
func (h *Handler) GetTopCountries(c *fiber.Ctx) error {
	res, err := h.uc.TopCountries(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to get top countries", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTopCountriesResponse(res))
}

// GetTeamInsights returns per-team aggregates.
func (h *Handler) GetTeamInsights(c *fiber.Ctx) error {
	res, err := h.uc.TeamInsights(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to get team insights", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTeamInsightsResponse(res))
}

// GetActiveUsersPerDay returns login counts per date; ?min=N keeps dates with at least N logins.
func (h *Handler) GetActiveUsersPerDay(c *fiber.Ctx) error {
	minTotal := 0
	if raw := c.Query("min"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return writeError(c, fmt.Errorf("%w: min must be an integer", entities.ErrInvalidArgument))
		}
		minTotal = v
	}

	res, err := h.uc.LoginsPerDay(c.UserContext(), minTotal)
	if err != nil {
		h.log.Errorw("failed to get active users per day", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToActiveUsersResponse(res))
}

// GetEvaluation runs the self evaluation of the report endpoints.
func (h *Handler) GetEvaluation(c *fiber.Ctx) error {
	res, err := h.eval.Evaluate(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to run evaluation", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToEvaluationResponse(res))
}
