package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecobridge/internal/models"
	"ecobridge/internal/responses"
	"ecobridge/internal/services"
)

const (
	refreshTokenCookieName = "refresh_token"
	refreshTokenMaxAge     = 30 * 24 * 3600 // seconds
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role"     binding:"required,oneof=sme consultant"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide email, password and role")
		return
	}

	user := &models.User{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
	accessToken, refreshToken, err := h.authService.Register(c.Request.Context(), user)
	if err != nil {
		responses.Error(c, err, "Could not register user")
		return
	}

	c.SetCookie(refreshTokenCookieName, refreshToken, refreshTokenMaxAge, "/", "", true, true)

	responses.Success(c, http.StatusCreated, gin.H{
		"access_token": accessToken,
		"user_id":      user.ID,
		"role":         user.Role,
	}, "User registered successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid format")
		return
	}

	accessToken, refreshToken, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Failed to login")
		return
	}

	c.SetCookie(refreshTokenCookieName, refreshToken, refreshTokenMaxAge, "/", "", true, true)

	responses.Success(c, http.StatusOK, gin.H{
		"access_token": accessToken,
	}, "Logged in successfully")
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookieName)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Missing refresh token")
		return
	}

	accessToken, newRefreshToken, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		c.SetCookie(refreshTokenCookieName, "", -1, "/", "", true, true)
		responses.Fail(c, http.StatusUnauthorized, err, "Invalid or expired refresh token")
		return
	}

	c.SetCookie(refreshTokenCookieName, newRefreshToken, refreshTokenMaxAge, "/", "", true, true)

	responses.Success(c, http.StatusOK, gin.H{
		"access_token": accessToken,
	}, "Access token refreshed")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if refreshToken, err := c.Cookie(refreshTokenCookieName); err == nil {
		if err := h.authService.Logout(c.Request.Context(), refreshToken); err != nil {
			responses.Fail(c, http.StatusInternalServerError, err, "Could not revoke token")
			return
		}
	}

	c.SetCookie(refreshTokenCookieName, "", -1, "/", "", true, true)

	responses.Success(c, http.StatusOK, nil, "Logged out successfully")
}
