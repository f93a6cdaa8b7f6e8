package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"medical-backend-server/internal/middleware"
	"medical-backend-server/internal/models"
	"medical-backend-server/internal/utils"
)

// UserHandler handles user profile requests.
type UserHandler struct {
	DB *gorm.DB
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// Me handles GET /users/me. A valid token whose id no longer resolves to a
// user row answers 404 rather than blowing up downstream.
func (h *UserHandler) Me(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "user not authenticated")
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "user not found")
		} else {
			utils.InternalServerError(c, "database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Sanitize()})
}
