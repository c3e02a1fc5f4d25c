package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saltain/randevux/internal/audit"
	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/middleware"
	"github.com/saltain/randevux/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewWorkingHoursHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, audit: auditDispatcher}
}

type UpsertWorkingHoursRequest struct {
	DoctorID   uint   `json:"doctor_id" binding:"required"`
	DayOfWeek  *int   `json:"day_of_week" binding:"required"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	IsHoliday  bool   `json:"is_holiday"`
}

func (h *WorkingHoursHandler) List(c *gin.Context) {
	var hours []models.WorkingHours
	if err := h.db.
		Order("doctor_id ASC").
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_list_working_hours", "Çalışma saatleri listelenemedi.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Upsert writes the entry for a (doctor, weekday) pair; one row per pair,
// later writes overwrite. Day indexes are Monday=0..Sunday=6, the same
// convention the slot listing resolves dates with.
func (h *WorkingHoursHandler) Upsert(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpsertWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Doktor ID gereklidir.")
		return
	}

	if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		httperr.BadRequest(c, "invalid_day_of_week", "Gün 0-6 aralığında olmalıdır.")
		return
	}

	wh := models.WorkingHours{
		DoctorID:   req.DoctorID,
		DayOfWeek:  *req.DayOfWeek,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
		IsHoliday:  req.IsHoliday,
	}

	if err := h.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "doctor_id"}, {Name: "day_of_week"}},
			UpdateAll: true,
		}).
		Create(&wh).Error; err != nil {
		httperr.Internal(c, "failed_to_upsert_working_hours", "Çalışma saatleri kaydedilemedi.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "working_hours_upserted",
		Entity:   "working_hours",
		EntityID: &wh.ID,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
