package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"medical-backend-server/internal/config"
	"medical-backend-server/internal/middleware"
	"medical-backend-server/internal/models"
	"medical-backend-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=patient doctor admin"`
}

// Register handles user registration. The role defaults to patient.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var existingUser models.User
	err := h.DB.Where("email = ? OR username = ?", req.Email, req.Username).First(&existingUser).Error
	if err == nil {
		utils.BadRequest(c, "user with this username or email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.InternalServerError(c, "database error")
		return
	}

	role := models.RolePatient
	if req.Role != "" {
		role = models.Role(req.Role)
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "failed to hash password")
		return
	}

	if err := h.DB.Create(&user).Error; err != nil {
		utils.InternalServerError(c, "failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user.Sanitize()})
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	User         models.UserSanitized `json:"user"`
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Unauthorized(c, "invalid email or password")
		} else {
			utils.InternalServerError(c, "database error")
		}
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "invalid email or password")
		return
	}

	accessToken, refreshTokenString, err := utils.GenerateTokens(&user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "failed to generate tokens")
		return
	}

	refreshToken := models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().Add(time.Duration(h.Cfg.JWTRefreshExpirationHours) * time.Hour),
		IsRevoked: false,
	}
	if err := h.DB.Create(&refreshToken).Error; err != nil {
		utils.InternalServerError(c, "failed to store refresh token")
		return
	}

	h.setRefreshCookie(c, refreshTokenString)

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user.Sanitize(),
	})
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse represents the response body for successful token refresh.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshToken rotates a refresh token: the presented token is revoked and a
// fresh pair is issued. Token from the HTTP-only cookie wins over the body.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	raw, err := c.Cookie("refresh_token")
	if err != nil || raw == "" {
		var req RefreshTokenRequest
		if !utils.BindAndValidate(c, &req) {
			return
		}
		raw = req.RefreshToken
	}

	claims, err := utils.ValidateToken(raw, h.Cfg.JWTRefreshSecret)
	if err != nil {
		utils.Unauthorized(c, "invalid refresh token")
		return
	}

	var storedToken models.RefreshToken
	err = h.DB.Where("token = ? AND user_id = ? AND is_revoked = ? AND expires_at > ?",
		raw, claims.UserID, false, time.Now()).First(&storedToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Unauthorized(c, "refresh token not found, expired, or revoked")
		} else {
			utils.InternalServerError(c, "database error")
		}
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
		utils.Unauthorized(c, "user not found")
		return
	}

	storedToken.IsRevoked = true
	if err := h.DB.Save(&storedToken).Error; err != nil {
		utils.InternalServerError(c, "failed to revoke refresh token")
		return
	}

	newAccessToken, newRefreshTokenString, err := utils.GenerateTokens(&user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "failed to generate tokens")
		return
	}

	newRefreshToken := models.RefreshToken{
		UserID:    user.ID,
		Token:     newRefreshTokenString,
		ExpiresAt: time.Now().Add(time.Duration(h.Cfg.JWTRefreshExpirationHours) * time.Hour),
		IsRevoked: false,
	}
	if err := h.DB.Create(&newRefreshToken).Error; err != nil {
		utils.InternalServerError(c, "failed to store refresh token")
		return
	}

	h.setRefreshCookie(c, newRefreshTokenString)

	c.JSON(http.StatusOK, RefreshTokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	})
}

// Logout revokes all outstanding refresh tokens for the caller and clears
// the cookie. Access tokens simply age out.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "user not authenticated")
		return
	}

	err := h.DB.Model(&models.RefreshToken{}).
		Where("user_id = ? AND is_revoked = ?", userID, false).
		Update("is_revoked", true).Error
	if err != nil {
		utils.InternalServerError(c, "failed to revoke refresh tokens")
		return
	}

	c.SetCookie("refresh_token", "", -1, "/", "", h.Cfg.Environment != "development", true)

	utils.Msg(c, http.StatusOK, "logged out")
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie(
		"refresh_token",
		token,
		h.Cfg.JWTRefreshExpirationHours*60*60,
		"/",
		"",
		h.Cfg.Environment != "development", // secure outside dev
		true,                               // HTTP only
	)
}
