package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubpulse/service-membership/pkg/domain"
)

// Success writes a 200 response with the standard envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created writes a 201 response with the standard envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// NotFound writes a 404 response with the given message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": message})
}

// Error maps an error to the appropriate status code. Domain errors carry
// their own message; anything else is reported as an internal error without
// leaking details.
func Error(c *gin.Context, err error) {
	var domErr *domain.DomainError
	if errors.As(err, &domErr) {
		switch {
		case errors.Is(domErr.Err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": domErr.Message})
		case errors.Is(domErr.Err, domain.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": domErr.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": domErr.Message})
		}
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal server error"})
}
