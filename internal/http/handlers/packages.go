package handlers

import (
	"net/http"
	"strings"

	"travels/internal/domain/models"
	"travels/internal/repositories"
	"travels/internal/utils"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	Repo repositories.PackageRepository
}

// GET /api/packages?destinationId=
func (h PackageHandler) List(c *gin.Context) {
	packages, err := h.Repo.List(c.Request.Context(), c.Query("destinationId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GET /api/packages/:id
func (h PackageHandler) Get(c *gin.Context) {
	pkg, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

type createPackageRequest struct {
	Name          string  `json:"packageName"`
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Duration      string  `json:"duration"`
	ImageURL      string  `json:"imageUrl"`
	DestinationID string  `json:"destinationId"`
}

// POST /api/packages
func (h PackageHandler) Create(c *gin.Context) {
	var req createPackageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Location) == "" || req.Price <= 0 {
		RespondError(c, http.StatusBadRequest, "Package name, location, and price are required")
		return
	}

	pkg := models.Package{
		Name:          strings.TrimSpace(req.Name),
		Location:      strings.TrimSpace(req.Location),
		Description:   req.Description,
		Price:         req.Price,
		Duration:      req.Duration,
		ImageURL:      req.ImageURL,
		DestinationID: req.DestinationID,
	}

	var err error
	for attempt := 0; attempt < 3; attempt++ {
		pkg.ID = utils.NewID("PKG", 7)
		err = h.Repo.Create(c.Request.Context(), pkg)
		if !repositories.IsIDCollision(err) {
			break
		}
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Package created successfully",
		"packageId": pkg.ID,
	})
}
