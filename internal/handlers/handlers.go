// Package handlers binds HTTP requests to the service layer.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/responses"
	"github.com/PrassV/Propo-Staging-sub002/internal/services"
)

// currentUserID reads the authenticated user's id placed on the context by
// the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}

// pathID parses the named path parameter as a uuid.
func pathID(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// failFor maps service errors onto HTTP statuses.
func failFor(c *gin.Context, err error, msg string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUnitOccupied),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrLeaseNotActive),
		errors.Is(err, services.ErrAlreadyPaid):
		status = http.StatusConflict
	}
	responses.Fail(c, status, err, msg)
}
