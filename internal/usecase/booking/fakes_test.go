package booking

import (
	"context"
	"errors"
	"sort"

	domain "github.com/saltain/randevux/internal/domain/booking"
	"github.com/saltain/randevux/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type hoursKey struct {
	doctorID  uint
	dayOfWeek int
}

type fakeRepo struct {
	services map[uint]*models.Service
	doctors  map[uint]*models.Doctor
	codes    map[string]*models.VerificationCode
	hours    map[hoursKey]*models.WorkingHours

	appointments []*models.Appointment
	nextID       uint

	settings *models.SheetsSettings
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: map[uint]*models.Service{},
		doctors:  map[uint]*models.Doctor{},
		codes:    map[string]*models.VerificationCode{},
		hours:    map[hoursKey]*models.WorkingHours{},
	}
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (r *fakeRepo) GetDoctor(_ context.Context, id uint) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return d, nil
}

func (r *fakeRepo) ListActiveServices(_ context.Context) ([]models.Service, error) {
	out := []models.Service{}
	for _, s := range r.services {
		if s.Status == "active" {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) ListActiveDoctors(_ context.Context) ([]models.Doctor, error) {
	out := []models.Doctor{}
	for _, d := range r.doctors {
		if d.Status == "active" {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeRepo) SaveVerificationCode(_ context.Context, code *models.VerificationCode) error {
	cp := *code
	r.codes[code.Email] = &cp
	return nil
}

func (r *fakeRepo) GetVerificationCode(_ context.Context, email string) (*models.VerificationCode, error) {
	vc, ok := r.codes[email]
	if !ok {
		return nil, nil
	}
	cp := *vc
	return &cp, nil
}

func (r *fakeRepo) DeleteVerificationCode(_ context.Context, email string) error {
	delete(r.codes, email)
	return nil
}

func (r *fakeRepo) GetWorkingHours(_ context.Context, doctorID uint, dayOfWeek int) (*models.WorkingHours, error) {
	wh, ok := r.hours[hoursKey{doctorID, dayOfWeek}]
	if !ok {
		return nil, nil
	}
	cp := *wh
	return &cp, nil
}

func (r *fakeRepo) ListTakenTimes(_ context.Context, doctorID uint, date string) ([]string, error) {
	times := []string{}
	for _, ap := range r.appointments {
		if ap.DoctorID == doctorID && ap.Date == date {
			times = append(times, ap.Time)
		}
	}
	return times, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.nextID++
	ap.ID = r.nextID
	cp := *ap
	r.appointments = append(r.appointments, &cp)
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range r.appointments {
		if ap.ID == id {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			cp := *ap
			r.appointments[i] = &cp
			return nil
		}
	}
	return errors.New("record not found")
}

func (r *fakeRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForExport(_ context.Context) ([]models.Appointment, error) {
	out, _ := r.ListAppointments(context.Background())
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeRepo) CountAppointments(_ context.Context) (int64, error) {
	return int64(len(r.appointments)), nil
}

func (r *fakeRepo) CountAppointmentsOnDate(_ context.Context, date string) (int64, error) {
	var n int64
	for _, ap := range r.appointments {
		if ap.Date == date {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) CountAppointmentsSince(_ context.Context, date string) (int64, error) {
	var n int64
	for _, ap := range r.appointments {
		if ap.Date >= date {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) GetSheetsSettings(_ context.Context) (*models.SheetsSettings, error) {
	if r.settings == nil {
		return &models.SheetsSettings{ID: 1, Mode: models.SheetsModeAutomatic}, nil
	}
	cp := *r.settings
	return &cp, nil
}

func (r *fakeRepo) SaveSheetsSettings(_ context.Context, s *models.SheetsSettings) error {
	cp := *s
	r.settings = &cp
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// FAKE MAILER / SHEETS GATEWAY
// ======================================================

type fakeMailer struct {
	sent []domain.EmailMessage
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg domain.EmailMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type fakeSheets struct {
	rows    []map[string]string
	columns []string
	err     error
}

func (s *fakeSheets) AppendRow(_ context.Context, _ *models.SheetsSettings, row map[string]string) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, row)
	return nil
}

func (s *fakeSheets) ListColumns(_ context.Context, _ *models.SheetsSettings) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.columns, nil
}

var (
	_ domain.Mailer        = (*fakeMailer)(nil)
	_ domain.SheetsGateway = (*fakeSheets)(nil)
)
