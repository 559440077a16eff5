// Package controller holds the gin handlers for the storefront and the
// admin back-office.
package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"zerodefect-backend/service"
	"zerodefect-backend/store"
)

// Controller wires the HTTP surface to the service modules.
type Controller struct {
	svc       *service.Services
	jwtSecret []byte
}

func New(svc *service.Services, jwtSecret []byte) *Controller {
	return &Controller{svc: svc, jwtSecret: jwtSecret}
}

// fail translates service errors into HTTP responses.
func fail(c *gin.Context, err error) {
	var fields service.ValidationError
	switch {
	case errors.As(err, &fields):
		c.JSON(400, gin.H{"error": "validation failed", "fields": fields})
	case errors.Is(err, service.ErrEmptyCart):
		c.JSON(400, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrBadCredentials):
		c.JSON(401, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(404, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(409, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRemoteWrite), errors.Is(err, service.ErrRemoteUnavailable):
		c.JSON(503, gin.H{"error": err.Error()})
	default:
		c.JSON(500, gin.H{"error": err.Error()})
	}
}

func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
