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

// AppointmentHandler handles appointment ledger requests.
type AppointmentHandler struct {
	DB *gorm.DB
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db}
}

// currentUser loads the caller's user row. The role is read fresh on every
// request, never from the token. A token whose id no longer resolves gets
// 401; the response has already been written when ok is false.
func (h *AppointmentHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "user not authenticated")
		return nil, false
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Unauthorized(c, "user not found")
		} else {
			utils.InternalServerError(c, "database error")
		}
		return nil, false
	}
	return &user, true
}

// List handles GET /appointments. Patients see only their own rows; every
// other role reads the full ledger.
func (h *AppointmentHandler) List(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	query := h.DB.Order("date_time asc")
	if !user.Role.SeesAllAppointments() {
		query = query.Where("patient_id = ?", user.ID)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "database error")
		return
	}

	// bare array on the wire, [] rather than null when empty
	out := make([]models.AppointmentSanitized, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, a.Sanitize())
	}

	c.JSON(http.StatusOK, out)
}

// CreateAppointmentRequest represents the request body for creating an
// appointment. There is deliberately no patient_id field: the record is
// always stamped with the caller's own id.
type CreateAppointmentRequest struct {
	DoctorName string  `json:"doctor_name"`
	DateTime   string  `json:"date_time"`
	Notes      *string `json:"notes"`
}

// Create handles POST /appointments.
func (h *AppointmentHandler) Create(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	// An absent or malformed body reads as an empty payload and fails the
	// presence check below with the same combined message.
	var req CreateAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	if req.DoctorName == "" || req.DateTime == "" {
		utils.BadRequest(c, "doctor_name and date_time required")
		return
	}

	dateTime, err := models.ParseDateTime(req.DateTime)
	if err != nil {
		utils.BadRequest(c, "date_time must be ISO format like 2025-09-16T10:30:00")
		return
	}

	appointment := models.Appointment{
		PatientID:  user.ID,
		DoctorName: req.DoctorName,
		DateTime:   dateTime,
		Notes:      req.Notes,
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, "failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment.Sanitize())
}

// Delete handles DELETE /appointments/:id. Existence is checked before
// permission, so a missing id is 404 for every caller with a valid token.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	appointmentID := c.Param("id")

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "not found")
		} else {
			utils.InternalServerError(c, "database error")
		}
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if !user.Role.CanDeleteAppointment(user.ID, &appointment) {
		utils.Forbidden(c, "forbidden")
		return
	}

	if err := h.DB.Delete(&models.Appointment{}, "id = ?", appointment.ID).Error; err != nil {
		utils.InternalServerError(c, "failed to delete appointment")
		return
	}

	utils.Msg(c, http.StatusOK, "deleted")
}
