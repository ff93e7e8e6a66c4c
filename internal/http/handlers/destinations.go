package handlers

import (
	"net/http"

	"travels/internal/repositories"

	"github.com/gin-gonic/gin"
)

type DestinationHandler struct {
	Repo repositories.DestinationRepository
}

// GET /api/destinations
func (h DestinationHandler) List(c *gin.Context) {
	destinations, err := h.Repo.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

// GET /api/destinations/:id
func (h DestinationHandler) Get(c *gin.Context) {
	destination, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, destination)
}
