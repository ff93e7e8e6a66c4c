package handlers

import (
	"net/http"

	"travels/internal/services"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	Svc services.SearchService
}

// GET /api/search?q=
func (h SearchHandler) Search(c *gin.Context) {
	result, err := h.Svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
