package repositories

import (
	"context"
	"database/sql"

	"travels/internal/domain"
	"travels/internal/domain/models"
)

type WishlistRepository struct {
	DB *sql.DB
}

func (r WishlistRepository) Exists(ctx context.Context, userID, packageID string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM WISHLIST WHERE User_ID = ? AND Package_ID = ?`,
		userID, packageID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r WishlistRepository) Insert(ctx context.Context, w models.WishlistItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO WISHLIST (Wishlist_ID, User_ID, Package_ID)
		VALUES (?, ?, ?)
	`, w.ID, w.UserID, w.PackageID)
	if err != nil {
		if isDuplicatePrimaryKey(err) {
			return errIDCollision
		}
		if isDuplicateKey(err) {
			return domain.ConflictError{Resource: "wishlist", Msg: "package already in wishlist", Err: err}
		}
	}
	return err
}

// Delete is idempotent; removing an absent entry is not an error.
func (r WishlistRepository) Delete(ctx context.Context, userID, packageID string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM WISHLIST WHERE User_ID = ? AND Package_ID = ?`, userID, packageID)
	return err
}

// ListByUser returns wishlist entries joined with package display fields.
func (r WishlistRepository) ListByUser(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT w.Wishlist_ID, w.User_ID, w.Package_ID,
		       p.Package_Name, p.Location, p.Price, COALESCE(p.Duration, ''), COALESCE(p.Image_URL, '')
		FROM WISHLIST w
		JOIN PACKAGE p ON w.Package_ID = p.Package_ID
		WHERE w.User_ID = ?
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.WishlistItem{}
	for rows.Next() {
		var w models.WishlistItem
		if err := rows.Scan(&w.ID, &w.UserID, &w.PackageID,
			&w.PackageName, &w.Location, &w.Price, &w.Duration, &w.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
