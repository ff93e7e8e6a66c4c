package handlers

import (
	"net/http"
	"strings"

	"travels/internal/http/middleware"
	"travels/internal/services"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	Svc services.WishlistService
}

type wishlistRequest struct {
	PackageID string `json:"packageId"`
}

// POST /api/users/wishlist
func (h WishlistHandler) Add(c *gin.Context) {
	var req wishlistRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.PackageID) == "" {
		RespondError(c, http.StatusBadRequest, "Package ID is required")
		return
	}

	item, err := h.Svc.Add(c.Request.Context(), middleware.CurrentUserID(c), req.PackageID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Package added to wishlist",
		"wishlistId": item.ID,
	})
}

// DELETE /api/users/wishlist — packageId comes in the body, removal is
// idempotent.
func (h WishlistHandler) Remove(c *gin.Context) {
	var req wishlistRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.PackageID) == "" {
		RespondError(c, http.StatusBadRequest, "Package ID is required")
		return
	}

	if err := h.Svc.Remove(c.Request.Context(), middleware.CurrentUserID(c), req.PackageID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package removed from wishlist"})
}

// GET /api/users/wishlist
func (h WishlistHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
