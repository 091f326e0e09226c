package handlers_fiber

import (
	"errors"
	"net/http"

	"users-insights/internal/dto"
	"users-insights/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.CodeInternal
	msg := "internal error"

	var decodeErr *entities.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		status = http.StatusBadRequest
		code = dto.CodeDecodeError
		msg = decodeErr.Error()
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrTimeout):
		status = http.StatusServiceUnavailable
		code = dto.CodeTimeout
		msg = "request budget exceeded"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorDetail{Code: code, Message: msg}}
}
