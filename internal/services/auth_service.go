package services

import (
	"context"
	"strings"

	"travels/internal/domain"
	"travels/internal/domain/models"
	"travels/internal/repositories"
	"travels/internal/utils"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthService issues and validates bearer tokens and resolves them to user
// records. Passwords are stored only as bcrypt hashes.
type AuthService struct {
	Users      repositories.UserRepository
	JWTSecret  string
	BcryptCost int
}

// Register creates a user and returns it with a signed 24-hour token.
// A duplicate email fails with a conflict and issues no token.
func (s AuthService) Register(ctx context.Context, in RegisterInput) (models.User, string, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return models.User{}, "", domain.ValidationError{Msg: "name, email, and password are required"}
	}

	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}
	if exists {
		return models.User{}, "", domain.ConflictError{Resource: "user", Msg: "user with this email already exists"}
	}

	hash, err := utils.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}

	user := models.User{
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		PasswordHash: hash,
	}
	for attempt := 0; attempt < idRetries; attempt++ {
		user.ID = utils.NewUserID()
		err = s.Users.Create(ctx, user)
		if !repositories.IsIDCollision(err) {
			break
		}
	}
	if err != nil {
		if domain.IsConflict(err) {
			return models.User{}, "", err
		}
		return models.User{}, "", domain.InternalError{Err: err}
	}

	token, err := utils.NewToken(s.JWTSecret, user.ID)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s AuthService) Login(ctx context.Context, in LoginInput) (models.User, string, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return models.User{}, "", domain.ValidationError{Msg: "email and password are required"}
	}

	user, err := s.Users.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, "", domain.AuthError{Msg: "invalid credentials"}
		}
		return models.User{}, "", domain.InternalError{Err: err}
	}
	if !utils.VerifyPassword(user.PasswordHash, in.Password) {
		return models.User{}, "", domain.AuthError{Msg: "invalid credentials"}
	}

	token, err := utils.NewToken(s.JWTSecret, user.ID)
	if err != nil {
		return models.User{}, "", domain.InternalError{Err: err}
	}
	return user, token, nil
}

// ResolveToken verifies a bearer token and resolves its subject to the
// current user row. A user deleted after issuance invalidates the token.
func (s AuthService) ResolveToken(ctx context.Context, raw string) (models.User, error) {
	userID, err := utils.ParseToken(s.JWTSecret, raw)
	if err != nil {
		return models.User{}, domain.AuthError{Msg: "invalid or expired token", Err: err}
	}
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, domain.AuthError{Msg: "user not found"}
		}
		return models.User{}, domain.InternalError{Err: err}
	}
	return user, nil
}
