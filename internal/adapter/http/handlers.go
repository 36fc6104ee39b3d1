package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"nftlend-backend/internal/domain/collateral"
	"nftlend-backend/internal/domain/loan"
	"nftlend-backend/internal/domain/user"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// callerID extracts the authenticated principal from the Ax-Caller-Id
// header. Empty string means the caller did not identify itself.
func callerID(c echo.Context) string {
	id := strings.ToLower(strings.TrimSpace(c.Request().Header.Get("Ax-Caller-Id")))
	if !reHex32.MatchString(id) {
		return ""
	}
	return id
}

// writeDomainError maps the error taxonomy onto HTTP status codes.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loan.ErrNotFound), errors.Is(err, user.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrAlreadyFinalized):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loan.ErrPreconditionFailed), errors.Is(err, collateral.ErrInvalidLock):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
