package services

import (
	"context"
	"strings"

	"travels/internal/domain"
	"travels/internal/domain/models"
	"travels/internal/repositories"
	"travels/internal/utils"
)

type ReviewInput struct {
	PackageID  string `json:"packageId"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText"`
}

type ReviewService struct {
	Packages repositories.PackageRepository
	Reviews  repositories.ReviewRepository
}

// Create records one review per (user, package) pair.
func (s ReviewService) Create(ctx context.Context, userID string, in ReviewInput) (models.Review, error) {
	if strings.TrimSpace(in.PackageID) == "" || in.Rating == 0 || strings.TrimSpace(in.ReviewText) == "" {
		return models.Review{}, domain.ValidationError{Msg: "package ID, rating, and review text are required"}
	}
	if in.Rating < 1 || in.Rating > 5 {
		return models.Review{}, domain.ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}

	if _, err := s.Packages.GetByID(ctx, in.PackageID); err != nil {
		return models.Review{}, err
	}

	exists, err := s.Reviews.ExistsForUserPackage(ctx, userID, in.PackageID)
	if err != nil {
		return models.Review{}, domain.InternalError{Err: err}
	}
	if exists {
		return models.Review{}, domain.ConflictError{Resource: "review", Msg: "you have already reviewed this package"}
	}

	review := models.Review{
		UserID:    userID,
		PackageID: in.PackageID,
		Text:      in.ReviewText,
		Rating:    in.Rating,
	}
	for attempt := 0; attempt < idRetries; attempt++ {
		review.ID = utils.NewReviewID()
		err = s.Reviews.Insert(ctx, review)
		if !repositories.IsIDCollision(err) {
			break
		}
	}
	if err != nil {
		if domain.IsConflict(err) {
			return models.Review{}, err
		}
		return models.Review{}, domain.InternalError{Err: err}
	}
	return review, nil
}

// ListByPackage returns reviews for a package with reviewer names.
func (s ReviewService) ListByPackage(ctx context.Context, packageID string) ([]models.Review, error) {
	if strings.TrimSpace(packageID) == "" {
		return nil, domain.ValidationError{Field: "packageId", Msg: "required"}
	}
	return s.Reviews.ListByPackage(ctx, packageID)
}
