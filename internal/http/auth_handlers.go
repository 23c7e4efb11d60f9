package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toolvault/toolvault/internal/auth"
)

// AuthController exposes the admin session endpoints. Registered only
// when the server runs in admin mode.
type AuthController struct {
	service *auth.Service
}

func NewAuthController(service *auth.Service) *AuthController {
	return &AuthController{service: service}
}

// Login validates the admin credential pair and returns a session token
// POST /api/login
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondBadRequest(c, "email and password are required")
		return
	}

	token, err := ac.service.Login(req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		respondUnauthorized(c, "invalid email or password")
		return
	}
	if err != nil {
		respondInternalError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout destroys the caller's session token. Idempotent: logging out an
// unknown or absent token still succeeds.
// POST /api/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if token := auth.BearerToken(c); token != "" {
		ac.service.Logout(token)
	}
	respondSuccess(c, "logged out")
}

// Check reports whether the caller holds a live admin session
// GET /api/auth/check
func (ac *AuthController) Check(c *gin.Context) {
	token := auth.BearerToken(c)
	c.JSON(http.StatusOK, gin.H{
		"authenticated": token != "" && ac.service.Check(token),
	})
}
