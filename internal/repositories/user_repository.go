package repositories

import (
	"context"
	"database/sql"
	"errors"

	"travels/internal/domain"
	"travels/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

// GetByEmail loads the full user row including the password hash.
func (r UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var (
		u              models.User
		phone, address sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT User_ID, Name, Email, Phone_Number, Address, Password
		FROM USER
		WHERE Email = ?
	`, email).Scan(&u.ID, &u.Name, &u.Email, &phone, &address, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, err
	}
	u.Phone = phone.String
	u.Address = address.String
	return u, nil
}

// GetByID resolves a token subject to the current user record.
func (r UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	var (
		u              models.User
		phone, address sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT User_ID, Name, Email, Phone_Number, Address
		FROM USER
		WHERE User_ID = ?
	`, id).Scan(&u.ID, &u.Name, &u.Email, &phone, &address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, err
	}
	u.Phone = phone.String
	u.Address = address.String
	return u, nil
}

// EmailExists is the pre-insert duplicate check; the unique index on Email
// still backs it up under races.
func (r UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM USER WHERE Email = ?`, email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a user row. Returns ConflictError on a duplicate email and
// errIDCollision when the random primary key collided, so the caller can
// regenerate and retry.
func (r UserRepository) Create(ctx context.Context, u models.User) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO USER (User_ID, Name, Email, Phone_Number, Address, Password)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, nullable(u.Phone), nullable(u.Address), u.PasswordHash)
	if err != nil {
		if isDuplicatePrimaryKey(err) {
			return errIDCollision
		}
		if isDuplicateKey(err) {
			return domain.ConflictError{Resource: "user", Msg: "user with this email already exists", Err: err}
		}
		return err
	}
	return nil
}

// errIDCollision signals that a randomly generated identifier already exists.
var errIDCollision = errors.New("identifier collision")

// IsIDCollision lets services decide to regenerate an identifier and retry.
func IsIDCollision(err error) bool { return errors.Is(err, errIDCollision) }

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
