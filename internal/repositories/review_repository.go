package repositories

import (
	"context"
	"database/sql"

	"travels/internal/domain"
	"travels/internal/domain/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

// ExistsForUserPackage reports whether the user has already reviewed the
// package; a unique index on (User_ID, Package_ID) backs this under races.
func (r ReviewRepository) ExistsForUserPackage(ctx context.Context, userID, packageID string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM REVIEW_RATING WHERE User_ID = ? AND Package_ID = ?`,
		userID, packageID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r ReviewRepository) Insert(ctx context.Context, rev models.Review) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO REVIEW_RATING (Review_ID, User_ID, Package_ID, Review_Text, Rating)
		VALUES (?, ?, ?, ?, ?)
	`, rev.ID, rev.UserID, rev.PackageID, rev.Text, rev.Rating)
	if err != nil {
		if isDuplicatePrimaryKey(err) {
			return errIDCollision
		}
		if isDuplicateKey(err) {
			return domain.ConflictError{Resource: "review", Msg: "you have already reviewed this package", Err: err}
		}
	}
	return err
}

// ListByPackage returns reviews joined with the reviewer's name, newest first.
func (r ReviewRepository) ListByPackage(ctx context.Context, packageID string) ([]models.Review, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT rv.Review_ID, rv.User_ID, rv.Package_ID, rv.Review_Text, rv.Rating, u.Name
		FROM REVIEW_RATING rv
		JOIN USER u ON rv.User_ID = u.User_ID
		WHERE rv.Package_ID = ?
		ORDER BY rv.Review_ID DESC
	`, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Review{}
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.PackageID, &rev.Text, &rev.Rating, &rev.UserName); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}
