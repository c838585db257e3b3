package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
	"github.com/PrassV/Propo-Staging-sub002/internal/responses"
	"github.com/PrassV/Propo-Staging-sub002/internal/services"
)

const (
	RefreshTokenCookieName = "refresh_token"
	RefreshTokenMaxAge     = 30 * 24 * 3600 // 30 days in seconds
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		FullName string `json:"full_name" binding:"required"`
		Email    string `json:"email"     binding:"required,email"`
		Password string `json:"password"  binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Please provide your name, email and password correctly")
		return
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}
	tokens, err := h.userService.Register(user)
	if err != nil {
		failFor(c, err, "Could not register user")
		return
	}

	c.SetCookie(RefreshTokenCookieName, tokens.RefreshToken, RefreshTokenMaxAge, "/", "", true, true)

	res := gin.H{
		"access_token": tokens.AccessToken,
	}

	responses.Success(c, http.StatusCreated, res, "New user registered successfully!")
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid Format")
		return
	}

	tokens, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		failFor(c, err, "Failed to login")
		return
	}

	c.SetCookie(RefreshTokenCookieName, tokens.RefreshToken, RefreshTokenMaxAge, "/", "", true, true)

	res := gin.H{
		"access_token": tokens.AccessToken,
	}

	responses.Success(c, http.StatusOK, res, "User Login Successfully!")
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookieName)
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Missing refresh token")
		return
	}

	accessToken, err := h.userService.Refresh(refreshToken)
	if err != nil {
		c.SetCookie(RefreshTokenCookieName, "", -1, "/", "", true, true)
		responses.Fail(c, http.StatusUnauthorized, err, "Invalid or expired refresh token")
		return
	}

	res := gin.H{
		"access_token": accessToken,
	}

	responses.Success(c, http.StatusOK, res, "Access token refreshed successfully")
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(RefreshTokenCookieName)
	accessToken := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	if refreshToken != "" {
		if err := h.userService.Logout(c.Request.Context(), refreshToken, accessToken); err != nil {
			responses.Fail(c, http.StatusUnauthorized, err, "Could not revoke token")
			return
		}
	}

	c.SetCookie(RefreshTokenCookieName, "", -1, "/", "", true, true)

	responses.Success(c, http.StatusOK, nil, "Logged out successfully")
}
