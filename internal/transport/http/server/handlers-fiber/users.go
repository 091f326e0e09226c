package handlers_fiber

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"users-insights/internal/dto"
	"users-insights/internal/entities"
	"users-insights/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

const (
	uploadField    = "file"
	uploadAccepted = "Arquivo recebido com sucesso"
)

// PostUsers replaces the dataset with the uploaded users.
func (h *Handler) PostUsers(c *fiber.Ctx) error {
	payload, err := uploadPayload(c)
	if err != nil {
		h.log.Warnw("failed to read upload", "error", err)
		return writeError(c, err)
	}

	users, err := mapper.DecodeUsers(payload)
	if err != nil {
		h.log.Warnw("rejected users payload", "error", err, "bytes", len(payload))
		return writeError(c, err)
	}

	n, err := h.uc.Ingest(c.UserContext(), users)
	if err != nil {
		h.log.Errorw("failed to ingest users", "error", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.CreateUsersResponse{
		Message:   uploadAccepted,
		UserCount: n,
	})
}

// uploadPayload extracts the users JSON from a multipart/urlencoded form field "file"
// or, for any other content type, from the raw body.
func uploadPayload(c *fiber.Ctx) ([]byte, error) {
	ct := strings.ToLower(string(c.Request().Header.ContentType()))

	switch {
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		if fh, err := c.FormFile(uploadField); err == nil {
			f, err := fh.Open()
			if err != nil {
				return nil, fmt.Errorf("open upload: %w", err)
			}
			defer f.Close()

			data, err := io.ReadAll(f)
			if err != nil {
				return nil, &entities.DecodeError{Op: "read upload", Err: err}
			}
			return data, nil
		}
		fallthrough
	case strings.HasPrefix(ct, fiber.MIMEApplicationForm):
		if v := c.FormValue(uploadField); v != "" {
			return []byte(v), nil
		}
		return nil, &entities.DecodeError{Op: "read upload", Err: errors.New(`missing form field "file"`)}
	default:
		return c.Body(), nil
	}
}
