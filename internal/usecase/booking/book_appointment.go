package booking

import (
	"context"
	"log"
	"time"

	"github.com/saltain/randevux/internal/audit"
	domain "github.com/saltain/randevux/internal/domain/booking"
	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/ics"
	"github.com/saltain/randevux/internal/mail"
	"github.com/saltain/randevux/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	FullName         string
	Phone            string
	Email            string
	VerificationCode string

	ServiceID uint
	DoctorID  uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

func (in BookAppointmentInput) complete() bool {
	return in.FullName != "" &&
		in.Phone != "" &&
		in.Email != "" &&
		in.VerificationCode != "" &&
		in.ServiceID != 0 &&
		in.DoctorID != 0 &&
		in.Date != "" &&
		in.Time != ""
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo   domain.Repository
	codes  *ConsumeVerificationCode
	mailer domain.Mailer
	sheets domain.SheetsGateway
	audit  *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	mailer domain.Mailer,
	sheets domain.SheetsGateway,
	auditDispatcher *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:   repo,
		codes:  NewConsumeVerificationCode(repo),
		mailer: mailer,
		sheets: sheets,
		audit:  auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the booking transaction: validate, consume the verification
// code, snapshot service/doctor, persist, then fire the notification side
// effects. There is deliberately no slot re-check before the insert; the
// grid shown at listing time is the only guard and the last write wins.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	if !in.complete() {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	// --------------------------------------------------
	// 2. Verification code (single use)
	// --------------------------------------------------
	if _, err := uc.codes.Execute(ctx, in.Email, in.VerificationCode); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Reference data, re-read at booking time
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	doctor, err := uc.repo.GetDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	// --------------------------------------------------
	// 4. Date / time
	// --------------------------------------------------
	start, err := time.Parse("2006-01-02 15:04", in.Date+" "+in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 5. Persist
	// --------------------------------------------------
	ap := &models.Appointment{
		FullName:    in.FullName,
		Phone:       domain.NormalizePhone(in.Phone),
		Email:       in.Email,
		ServiceID:   in.ServiceID,
		ServiceName: service.Name,
		DoctorID:    in.DoctorID,
		DoctorName:  doctor.Name,
		Date:        in.Date,
		Time:        in.Time,
		Notes:       in.Notes,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Side effects, best effort after the write
	// --------------------------------------------------
	uc.notify(ctx, ap, service, start)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// notify sends the confirmation email with the calendar attachment and, when
// the export is connected in automatic mode, appends the spreadsheet row.
// Failures here are logged only; the appointment is already persisted.
func (uc *BookAppointment) notify(
	ctx context.Context,
	ap *models.Appointment,
	service *models.Service,
	start time.Time,
) {

	duration := service.DurationMin
	if duration <= 0 {
		duration = 30
	}

	icsContent := ics.Generate(ics.Event{
		Title:       service.Name + " - " + ap.DoctorName,
		Description: "Randevu: " + service.Name + " (" + ap.DoctorName + ")",
		Start:       start,
		DurationMin: duration,
	})

	err := uc.mailer.Send(ctx, domain.EmailMessage{
		To:          ap.Email,
		Subject:     "Randevunuz Oluşturuldu",
		Body:        mail.ConfirmationBody(ap.FullName, ap.ServiceName, ap.DoctorName, ap.Date, ap.Time),
		ICSFilename: "randevu.ics",
		ICSContent:  icsContent,
	})
	if err != nil {
		log.Println("confirmation email failed:", err)
	}

	settings, err := uc.repo.GetSheetsSettings(ctx)
	if err != nil {
		log.Println("sheets settings lookup failed:", err)
		return
	}

	if !settings.Connected || settings.Mode != models.SheetsModeAutomatic {
		return
	}

	if err := uc.sheets.AppendRow(ctx, settings, appointmentRow(ap)); err != nil {
		log.Println("sheets append failed:", err)
	}
}

// appointmentRow uses the field names the column mappings refer to.
func appointmentRow(ap *models.Appointment) map[string]string {
	return map[string]string{
		"fullName":    ap.FullName,
		"email":       ap.Email,
		"phone":       ap.Phone,
		"serviceName": ap.ServiceName,
		"doctorName":  ap.DoctorName,
		"date":        ap.Date,
		"time":        ap.Time,
	}
}
