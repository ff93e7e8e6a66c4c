package repositories

import (
	"context"
	"database/sql"

	"travels/internal/domain/models"
)

type AirportRepository struct {
	DB *sql.DB
}

// Search matches code, name, city or country against a substring. The limit
// keeps typeahead responses small.
func (r AirportRepository) Search(ctx context.Context, term string, limit int) ([]models.Airport, error) {
	like := "%" + term + "%"
	rows, err := r.DB.QueryContext(ctx, `
		SELECT Airport_Code, Name, City, Country
		FROM AIRPORT
		WHERE Airport_Code LIKE ? OR Name LIKE ? OR City LIKE ? OR Country LIKE ?
		LIMIT ?
	`, like, like, like, like, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Airport{}
	for rows.Next() {
		var a models.Airport
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Country); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
