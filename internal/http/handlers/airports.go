package handlers

import (
	"net/http"

	"travels/internal/domain/models"
	"travels/internal/repositories"

	"github.com/gin-gonic/gin"
)

const airportSearchLimit = 10

type AirportHandler struct {
	Repo repositories.AirportRepository
}

// GET /api/airports/search?query=
// Queries shorter than two characters return an empty list rather than an
// error, matching typeahead semantics.
func (h AirportHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if len(query) < 2 {
		c.JSON(http.StatusOK, []models.Airport{})
		return
	}

	airports, err := h.Repo.Search(c.Request.Context(), query, airportSearchLimit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, airports)
}
