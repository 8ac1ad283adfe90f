// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "boardroom/internal/delivery/context"
	"boardroom/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Root serves a small service banner at the API root.
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": "Boardroom API"}, "Service information")
}

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// currentUserID extracts the authenticated user ID placed on the context by
// the auth middleware. A missing ID means the route was wired without the
// middleware; treat it as unauthenticated.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Could not validate credentials")
	}

	return userID, nil
}
