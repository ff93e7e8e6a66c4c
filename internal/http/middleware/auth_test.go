package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travels/internal/repositories"
	"travels/internal/services"
	"travels/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthedRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	auth := services.AuthService{
		Users:     repositories.UserRepository{DB: db},
		JWTSecret: "test-secret",
	}

	r := gin.New()
	r.GET("/me", Auth(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUserID(c)})
	})
	return r, mock
}

func TestAuthMissingHeader(t *testing.T) {
	r, _ := newAuthedRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthBadToken(t *testing.T) {
	r, _ := newAuthedRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthResolvesUser(t *testing.T) {
	r, mock := newAuthedRouter(t)

	token, err := utils.NewToken("test-secret", "U000001")
	require.NoError(t, err)

	mock.ExpectQuery("SELECT User_ID, Name, Email").WithArgs("U000001").
		WillReturnRows(sqlmock.NewRows([]string{
			"User_ID", "Name", "Email", "Phone_Number", "Address",
		}).AddRow("U000001", "User", "user@example.com", nil, nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "U000001")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthDeletedUser(t *testing.T) {
	r, mock := newAuthedRouter(t)

	token, err := utils.NewToken("test-secret", "U000009")
	require.NoError(t, err)

	mock.ExpectQuery("SELECT User_ID, Name, Email").WithArgs("U000009").
		WillReturnRows(sqlmock.NewRows([]string{
			"User_ID", "Name", "Email", "Phone_Number", "Address",
		}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
