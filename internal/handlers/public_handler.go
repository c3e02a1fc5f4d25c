package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/saltain/randevux/internal/domain/booking"
	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/httpresp"
	ucBooking "github.com/saltain/randevux/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the booking wizard: catalog, slot grid, verification
// codes and the booking itself. Everything here is unauthenticated.
type PublicHandler struct {
	repo      domain.Repository
	listSlots *ucBooking.ListSlots
	sendCode  *ucBooking.SendVerificationCode
	book      *ucBooking.BookAppointment
}

func NewPublicHandler(
	repo domain.Repository,
	listSlots *ucBooking.ListSlots,
	sendCode *ucBooking.SendVerificationCode,
	book *ucBooking.BookAppointment,
) *PublicHandler {
	return &PublicHandler{
		repo:      repo,
		listSlots: listSlots,
		sendCode:  sendCode,
		book:      book,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type SendCodeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type BookAppointmentRequest struct {
	FullName         string `json:"full_name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	VerificationCode string `json:"verification_code"`
	ServiceID        uint   `json:"service_id"`
	DoctorID         uint   `json:"doctor_id"`
	Date             string `json:"date"` // YYYY-MM-DD
	Time             string `json:"time"` // HH:MM
	Notes            string `json:"notes"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListActiveServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Hizmetler listelenemedi.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.repo.ListActiveDoctors(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Doktorlar listelenemedi.")
		return
	}

	httpresp.List(c, doctors)
}

////////////////////////////////////////////////////////
// SLOTS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListSlots(c *gin.Context) {
	doctorIDStr := c.Query("doctor_id")
	date := c.Query("date")

	if doctorIDStr == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "Doktor ve tarih gereklidir.")
		return
	}

	doctorID, err := strconv.ParseUint(doctorIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Doktor geçersiz.")
		return
	}

	slots, err := h.listSlots.Execute(c.Request.Context(), uint(doctorID), date)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// VERIFICATION
////////////////////////////////////////////////////////

func (h *PublicHandler) SendVerificationCode(c *gin.Context) {
	var req SendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Geçersiz istek.")
		return
	}

	err := h.sendCode.Execute(c.Request.Context(), req.Email, req.Name, req.Phone)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Success(c)
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Geçersiz istek.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		FullName:         req.FullName,
		Phone:            req.Phone,
		Email:            req.Email,
		VerificationCode: req.VerificationCode,
		ServiceID:        req.ServiceID,
		DoctorID:         req.DoctorID,
		Date:             req.Date,
		Time:             req.Time,
		Notes:            req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      ap.ID,
	})
}
