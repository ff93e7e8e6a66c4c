package handlers

import (
	"net/http"

	"travels/internal/http/middleware"
	"travels/internal/services"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	Svc services.ReviewService
}

// POST /api/reviews
func (h ReviewHandler) Create(c *gin.Context) {
	var req services.ReviewInput
	if !BindJSONOrError(c, &req) {
		return
	}

	review, err := h.Svc.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Review submitted successfully",
		"reviewId":   review.ID,
		"packageId":  review.PackageID,
		"rating":     review.Rating,
		"reviewText": review.Text,
	})
}

// GET /api/reviews?packageId=
func (h ReviewHandler) ListByPackage(c *gin.Context) {
	packageID := c.Query("packageId")
	if packageID == "" {
		RespondError(c, http.StatusBadRequest, "Package ID is required")
		return
	}

	reviews, err := h.Svc.ListByPackage(c.Request.Context(), packageID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
