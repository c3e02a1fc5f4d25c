package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/saltain/randevux/internal/domain/booking"
	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/middleware"
	booking "github.com/saltain/randevux/internal/usecase/booking"
)

// AppointmentHandler serves the back-office side of appointments: listing,
// the pending→confirmed and →cancelled transitions, reminder mails and the
// dashboard counters.
type AppointmentHandler struct {
	repo     domain.Repository
	confirm  *booking.ConfirmAppointment
	cancel   *booking.CancelAppointment
	reminder *booking.SendReminder
	stats    *booking.DashboardStats
}

func NewAppointmentHandler(
	repo domain.Repository,
	confirm *booking.ConfirmAppointment,
	cancel *booking.CancelAppointment,
	reminder *booking.SendReminder,
	stats *booking.DashboardStats,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:     repo,
		confirm:  confirm,
		cancel:   cancel,
		reminder: reminder,
		stats:    stats,
	}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.repo.ListAppointments(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Randevular listelenemedi.")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Randevu ID gereklidir.")
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Randevu ID gereklidir.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) SendReminder(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Randevu ID gereklidir.")
		return
	}

	if err := h.reminder.Execute(c.Request.Context(), userID, uint(id)); err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AppointmentHandler) DashboardStats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "İstatistikler yüklenemedi.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
