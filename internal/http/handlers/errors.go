package handlers

import (
	"log"
	"net/http"

	"travels/internal/domain"
	"travels/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard error payload: {"message": ...}.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// RespondDomainError maps domain errors to HTTP responses. Internal errors
// are logged with the request id and surface only a generic message.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case domain.IsAuth(err):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error())
	case domain.IsCapacity(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[ERROR] request_id=%s err=%v", middleware.GetRequestID(c), err)
		RespondError(c, http.StatusInternalServerError, "Server error")
	}
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
