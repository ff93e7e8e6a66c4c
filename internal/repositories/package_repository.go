package repositories

import (
	"context"
	"database/sql"
	"errors"

	"travels/internal/domain"
	"travels/internal/domain/models"
)

type PackageRepository struct {
	DB *sql.DB
}

const packageColumns = `Package_ID, Package_Name, Location, COALESCE(Description, ''),
	Price, COALESCE(Duration, ''), COALESCE(Image_URL, ''), COALESCE(Destination_ID, '')`

func scanPackage(row interface{ Scan(...any) error }) (models.Package, error) {
	var p models.Package
	err := row.Scan(&p.ID, &p.Name, &p.Location, &p.Description,
		&p.Price, &p.Duration, &p.ImageURL, &p.DestinationID)
	return p, err
}

// List returns the catalog, optionally filtered by destination.
func (r PackageRepository) List(ctx context.Context, destinationID string) ([]models.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM PACKAGE`
	args := []any{}
	if destinationID != "" {
		query += ` WHERE Destination_ID = ?`
		args = append(args, destinationID)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Package{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PackageRepository) GetByID(ctx context.Context, id string) (models.Package, error) {
	p, err := scanPackage(r.DB.QueryRowContext(ctx,
		`SELECT `+packageColumns+` FROM PACKAGE WHERE Package_ID = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Package{}, domain.NotFoundError{Resource: "package", Err: err}
		}
		return models.Package{}, err
	}
	return p, nil
}

// Create inserts a catalog entry.
func (r PackageRepository) Create(ctx context.Context, p models.Package) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO PACKAGE (Package_ID, Package_Name, Location, Description, Price, Duration, Image_URL, Destination_ID)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Location, nullable(p.Description), p.Price,
		nullable(p.Duration), nullable(p.ImageURL), nullable(p.DestinationID))
	if isDuplicatePrimaryKey(err) {
		return errIDCollision
	}
	return err
}

// SearchByTerm matches name, location or description against a substring.
func (r PackageRepository) SearchByTerm(ctx context.Context, term string) ([]models.Package, error) {
	like := "%" + term + "%"
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+packageColumns+` FROM PACKAGE
		WHERE Package_Name LIKE ? OR Location LIKE ? OR Description LIKE ?
	`, like, like, like)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Package{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
