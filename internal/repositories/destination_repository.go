package repositories

import (
	"context"
	"database/sql"
	"errors"

	"travels/internal/domain"
	"travels/internal/domain/models"
)

type DestinationRepository struct {
	DB *sql.DB
}

func (r DestinationRepository) List(ctx context.Context) ([]models.Destination, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT Destination_ID, Name, Location, COALESCE(Description, ''), COALESCE(Image_URL, '')
		FROM DESTINATION
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Location, &d.Description, &d.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DestinationRepository) GetByID(ctx context.Context, id string) (models.Destination, error) {
	var d models.Destination
	err := r.DB.QueryRowContext(ctx, `
		SELECT Destination_ID, Name, Location, COALESCE(Description, ''), COALESCE(Image_URL, '')
		FROM DESTINATION
		WHERE Destination_ID = ?
	`, id).Scan(&d.ID, &d.Name, &d.Location, &d.Description, &d.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Destination{}, domain.NotFoundError{Resource: "destination", Err: err}
		}
		return models.Destination{}, err
	}
	return d, nil
}

// SearchByTerm matches name, location or description against a substring.
func (r DestinationRepository) SearchByTerm(ctx context.Context, term string) ([]models.Destination, error) {
	like := "%" + term + "%"
	rows, err := r.DB.QueryContext(ctx, `
		SELECT Destination_ID, Name, Location, COALESCE(Description, ''), COALESCE(Image_URL, '')
		FROM DESTINATION
		WHERE Name LIKE ? OR Location LIKE ? OR Description LIKE ?
	`, like, like, like)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Location, &d.Description, &d.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
