package handlers

import (
	"net/http"

	"travels/internal/http/middleware"
	"travels/internal/services"
	"travels/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Svc services.AuthService
}

func userPayload(id, name, email string) gin.H {
	return gin.H{"id": id, "name": name, "email": email}
}

// POST /api/auth/register
func (h AuthHandler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}

	user, token, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "register", "user_id="+user.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    userPayload(user.ID, user.Name, user.Email),
	})
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req services.LoginInput
	if !BindJSONOrError(c, &req) {
		return
	}

	user, token, err := h.Svc.Login(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "user_id="+user.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    userPayload(user.ID, user.Name, user.Email),
	})
}

// GET /api/auth/me
func (h AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
