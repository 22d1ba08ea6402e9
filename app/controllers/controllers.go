// Package controllers contains the HTTP handlers. Each controller wraps a
// service and translates between the JSON envelope and service results.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
	"github.com/shashiranjanraj/kashvi-store/pkg/logger"
)

// paramUint parses a numeric path parameter. Sends a 400 and returns false
// on garbage input.
func paramUint(c *ctx.Context, name string) (uint, bool) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		c.Error(http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(n), true
}

// queryInt parses an integer query parameter with a default.
func queryInt(c *ctx.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// fail maps service errors to HTTP responses. Unknown errors become a
// generic 500 with the detail kept in the logs.
func fail(c *ctx.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.NotFound()
	case errors.Is(err, services.ErrForbidden):
		c.Forbidden()
	case errors.Is(err, services.ErrNotVerifiedBuyer):
		c.Forbidden("Only verified buyers can review this gemstone")
	case errors.Is(err, services.ErrInvalidCredentials):
		c.Unauthorized("Invalid email or password")
	case errors.Is(err, services.ErrEmailTaken):
		c.Error(http.StatusBadRequest, "Email is already registered")
	case errors.Is(err, services.ErrInvalidStatus):
		c.Error(http.StatusBadRequest, "Invalid order status")
	case errors.Is(err, services.ErrInsufficientStock):
		c.Error(http.StatusBadRequest, "Insufficient stock")
	case errors.Is(err, services.ErrInvalidQuantity):
		c.Error(http.StatusBadRequest, "Quantity must be at least 1")
	case errors.Is(err, services.ErrInactiveGemstone):
		c.Error(http.StatusBadRequest, "Gemstone is not available")
	case errors.Is(err, services.ErrDeleteBlocked):
		c.Error(http.StatusBadRequest, "Resource is in use and cannot be deleted")
	case errors.Is(err, services.ErrUnknownExport):
		c.Error(http.StatusBadRequest, "Unknown export type")
	default:
		logger.WithCtx(c.Context()).Error("request failed", "error", err)
		c.Error(http.StatusInternalServerError, "Internal Server Error")
	}
}
