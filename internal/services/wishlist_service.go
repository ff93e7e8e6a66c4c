package services

import (
	"context"
	"strings"

	"travels/internal/domain"
	"travels/internal/domain/models"
	"travels/internal/repositories"
	"travels/internal/utils"
)

type WishlistService struct {
	Packages  repositories.PackageRepository
	Wishlists repositories.WishlistRepository
}

// Add puts a package on the caller's wishlist; a duplicate membership is a
// conflict.
func (s WishlistService) Add(ctx context.Context, userID, packageID string) (models.WishlistItem, error) {
	if strings.TrimSpace(packageID) == "" {
		return models.WishlistItem{}, domain.ValidationError{Field: "packageId", Msg: "required"}
	}
	if _, err := s.Packages.GetByID(ctx, packageID); err != nil {
		return models.WishlistItem{}, err
	}

	exists, err := s.Wishlists.Exists(ctx, userID, packageID)
	if err != nil {
		return models.WishlistItem{}, domain.InternalError{Err: err}
	}
	if exists {
		return models.WishlistItem{}, domain.ConflictError{Resource: "wishlist", Msg: "package already in wishlist"}
	}

	item := models.WishlistItem{UserID: userID, PackageID: packageID}
	for attempt := 0; attempt < idRetries; attempt++ {
		item.ID = utils.NewWishlistID()
		err = s.Wishlists.Insert(ctx, item)
		if !repositories.IsIDCollision(err) {
			break
		}
	}
	if err != nil {
		if domain.IsConflict(err) {
			return models.WishlistItem{}, err
		}
		return models.WishlistItem{}, domain.InternalError{Err: err}
	}
	return item, nil
}

// Remove deletes the membership; removing an absent entry succeeds.
func (s WishlistService) Remove(ctx context.Context, userID, packageID string) error {
	if strings.TrimSpace(packageID) == "" {
		return domain.ValidationError{Field: "packageId", Msg: "required"}
	}
	if err := s.Wishlists.Delete(ctx, userID, packageID); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// List returns the caller's wishlist with package display fields.
func (s WishlistService) List(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	return s.Wishlists.ListByUser(ctx, userID)
}
