package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/saltain/randevux/internal/domain/booking"
	"github.com/saltain/randevux/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*BookingGormRepository)(nil)

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service / Doctor
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *BookingGormRepository) GetDoctor(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *BookingGormRepository) ListActiveServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("status = ?", "active").
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) ListActiveDoctors(
	ctx context.Context,
) ([]models.Doctor, error) {

	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).
		Where("status = ?", "active").
		Order("name ASC").
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

// --------------------------------------------------
// Verification codes
// --------------------------------------------------

func (r *BookingGormRepository) SaveVerificationCode(
	ctx context.Context,
	code *models.VerificationCode,
) error {
	// one live code per email: re-issuing overwrites
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			UpdateAll: true,
		}).
		Create(code).Error
}

func (r *BookingGormRepository) GetVerificationCode(
	ctx context.Context,
	email string,
) (*models.VerificationCode, error) {

	var code models.VerificationCode
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&code).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &code, nil
}

func (r *BookingGormRepository) DeleteVerificationCode(
	ctx context.Context,
	email string,
) error {
	return r.db.WithContext(ctx).
		Where("email = ?", email).
		Delete(&models.VerificationCode{}).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetWorkingHours(
	ctx context.Context,
	doctorID uint,
	dayOfWeek int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND day_of_week = ?", doctorID, dayOfWeek).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &wh, nil
}

func (r *BookingGormRepository) ListTakenTimes(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]string, error) {

	// no status filter: cancelled appointments keep blocking their slot
	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Order("time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsForExport(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Dashboard
// --------------------------------------------------

func (r *BookingGormRepository) CountAppointments(
	ctx context.Context,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Count(&count).Error
	return count, err
}

func (r *BookingGormRepository) CountAppointmentsOnDate(
	ctx context.Context,
	date string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ?", date).
		Count(&count).Error
	return count, err
}

func (r *BookingGormRepository) CountAppointmentsSince(
	ctx context.Context,
	date string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date >= ?", date).
		Count(&count).Error
	return count, err
}

// --------------------------------------------------
// Sheets settings
// --------------------------------------------------

func (r *BookingGormRepository) GetSheetsSettings(
	ctx context.Context,
) (*models.SheetsSettings, error) {

	var settings models.SheetsSettings
	err := r.db.WithContext(ctx).First(&settings, 1).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		// defaults until the back office saves anything
		return &models.SheetsSettings{
			ID:   1,
			Mode: models.SheetsModeAutomatic,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *BookingGormRepository) SaveSheetsSettings(
	ctx context.Context,
	s *models.SheetsSettings,
) error {
	s.ID = 1
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(s).Error
}
