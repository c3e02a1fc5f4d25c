package booking

import (
	"context"

	"github.com/saltain/randevux/internal/models"
)

type Repository interface {
	// -------- Service / Doctor --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetDoctor(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	// name-ordered, active only; what the public wizard sees
	ListActiveServices(ctx context.Context) ([]models.Service, error)
	ListActiveDoctors(ctx context.Context) ([]models.Doctor, error)

	// -------- Verification codes --------
	// GetVerificationCode returns (nil, nil) when no code exists for the
	// email; absence is a business condition, not a storage failure.
	SaveVerificationCode(
		ctx context.Context,
		code *models.VerificationCode,
	) error

	GetVerificationCode(
		ctx context.Context,
		email string,
	) (*models.VerificationCode, error)

	DeleteVerificationCode(
		ctx context.Context,
		email string,
	) error

	// -------- Availability --------
	// GetWorkingHours returns (nil, nil) when no entry is configured for
	// the doctor/weekday pair.
	GetWorkingHours(
		ctx context.Context,
		doctorID uint,
		dayOfWeek int,
	) (*models.WorkingHours, error)

	// ListTakenTimes returns the HH:MM starts of every appointment for the
	// doctor and date, regardless of status.
	ListTakenTimes(
		ctx context.Context,
		doctorID uint,
		date string,
	) ([]string, error)

	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// ListAppointmentsForExport orders by date ascending, the order rows
	// land in the spreadsheet.
	ListAppointmentsForExport(
		ctx context.Context,
	) ([]models.Appointment, error)

	// -------- Dashboard --------
	CountAppointments(ctx context.Context) (int64, error)
	CountAppointmentsOnDate(ctx context.Context, date string) (int64, error)
	CountAppointmentsSince(ctx context.Context, date string) (int64, error)

	// -------- Sheets settings --------
	GetSheetsSettings(ctx context.Context) (*models.SheetsSettings, error)
	SaveSheetsSettings(ctx context.Context, s *models.SheetsSettings) error
}
