package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saltain/randevux/internal/audit"
	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/middleware"
	"github.com/saltain/randevux/internal/models"
)

type DoctorHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewDoctorHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *DoctorHandler {
	return &DoctorHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Services  []uint `json:"services"`
	Status    string `json:"status"`
}

type UpdateDoctorRequest struct {
	Name      *string `json:"name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Services  *[]uint `json:"services,omitempty"`
	Status    *string `json:"status,omitempty"`
}

func joinServiceIDs(ids []uint) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, ",")
}

// --------- Handlers ---------

func (h *DoctorHandler) List(c *gin.Context) {
	status := strings.TrimSpace(strings.ToLower(c.Query("status")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Session(&gorm.Session{})

	if status != "" {
		q = q.Where("status = ?", status)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(specialty) LIKE ?", like, like)
	}

	var doctors []models.Doctor
	if err := q.Order("name ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Doktorlar listelenemedi.")
		return
	}

	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Doktor bilgileri eksik.")
		return
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	doctor := models.Doctor{
		Name:       req.Name,
		Specialty:  req.Specialty,
		Email:      req.Email,
		Phone:      req.Phone,
		ServiceIDs: joinServiceIDs(req.Services),
		Status:     status,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Doktor oluşturulamadı.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "doctor_created",
		Entity:   "doctor",
		EntityID: &doctor.ID,
	})

	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Doktor ID gereklidir.")
		return
	}

	var doctor models.Doctor
	if err := h.db.First(&doctor, uint(id)).Error; err != nil {
		httperr.NotFound(c, "doctor_not_found", "Seçilen doktor bulunamadı.")
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Geçersiz istek.")
		return
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.Email != nil {
		doctor.Email = *req.Email
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Services != nil {
		doctor.ServiceIDs = joinServiceIDs(*req.Services)
	}
	if req.Status != nil {
		doctor.Status = *req.Status
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Doktor güncellenemedi.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "doctor_updated",
		Entity:   "doctor",
		EntityID: &doctor.ID,
	})

	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Doktor ID gereklidir.")
		return
	}

	entityID := uint(id)
	if err := h.db.Delete(&models.Doctor{}, entityID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_doctor", "Doktor silinemedi.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "doctor_deleted",
		Entity:   "doctor",
		EntityID: &entityID,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
