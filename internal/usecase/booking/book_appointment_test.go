package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltain/randevux/internal/audit"
	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/models"
)

type nopSink struct{}

func (nopSink) Log(*uint, string, string, *uint, any) error { return nil }

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{})
}

func seedCatalog(repo *fakeRepo) {
	repo.services[1] = &models.Service{
		ID:          1,
		Name:        "Diş Kontrolü",
		DurationMin: 30,
		Status:      "active",
	}
	repo.doctors[2] = &models.Doctor{
		ID:        2,
		Name:      "Dr. Ayşe Yılmaz",
		Specialty: "Diş Hekimi",
		Status:    "active",
	}
}

func seedCode(repo *fakeRepo, email, code string) {
	repo.codes[email] = &models.VerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
}

func validInput() BookAppointmentInput {
	return BookAppointmentInput{
		FullName:         "Mehmet Demir",
		Phone:            "+90 555 123 45 67",
		Email:            "mehmet@example.com",
		VerificationCode: "123456",
		ServiceID:        1,
		DoctorID:         2,
		Date:             "2024-07-01",
		Time:             "10:00",
	}
}

func TestBookAppointmentHappyPath(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	seedCode(repo, "mehmet@example.com", "123456")

	mailer := &fakeMailer{}
	gateway := &fakeSheets{}
	uc := NewBookAppointment(repo, mailer, gateway, testDispatcher())

	ap, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, "+905551234567", ap.Phone)
	assert.Equal(t, "Diş Kontrolü", ap.ServiceName)
	assert.Equal(t, "Dr. Ayşe Yılmaz", ap.DoctorName)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Randevunuz Oluşturuldu", mailer.sent[0].Subject)
	assert.Equal(t, "randevu.ics", mailer.sent[0].ICSFilename)
	assert.Contains(t, mailer.sent[0].ICSContent, "BEGIN:VCALENDAR")
}

func TestBookAppointmentMissingFields(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	uc := NewBookAppointment(repo, &fakeMailer{}, &fakeSheets{}, testDispatcher())

	in := validInput()
	in.Phone = ""

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "missing_required_fields"))
	assert.Empty(t, repo.appointments)
}

func TestBookAppointmentWrongCode(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	seedCode(repo, "mehmet@example.com", "123456")
	uc := NewBookAppointment(repo, &fakeMailer{}, &fakeSheets{}, testDispatcher())

	in := validInput()
	in.VerificationCode = "654321"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "verification_invalid"))
	assert.Empty(t, repo.appointments)

	// a failed attempt does not consume the code
	assert.Contains(t, repo.codes, "mehmet@example.com")
}

func TestBookAppointmentExpiredCode(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	repo.codes["mehmet@example.com"] = &models.VerificationCode{
		Email:     "mehmet@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	uc := NewBookAppointment(repo, &fakeMailer{}, &fakeSheets{}, testDispatcher())

	_, err := uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "verification_expired"))
	assert.Empty(t, repo.appointments)
}

func TestBookAppointmentCodeSingleUse(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	seedCode(repo, "mehmet@example.com", "123456")
	uc := NewBookAppointment(repo, &fakeMailer{}, &fakeSheets{}, testDispatcher())

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "verification_not_found"))
	assert.Len(t, repo.appointments, 1)
}

func TestBookAppointmentUnknownService(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	seedCode(repo, "mehmet@example.com", "123456")
	uc := NewBookAppointment(repo, &fakeMailer{}, &fakeSheets{}, testDispatcher())

	in := validInput()
	in.ServiceID = 99

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestBookAppointmentBadTime(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	seedCode(repo, "mehmet@example.com", "123456")
	uc := NewBookAppointment(repo, &fakeMailer{}, &fakeSheets{}, testDispatcher())

	in := validInput()
	in.Time = "25:99"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

// A taken slot does not stop a second booking; the grid simply reports it as
// unavailable afterwards.
func TestBookAppointmentNoSlotGuard(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	uc := NewBookAppointment(repo, &fakeMailer{}, &fakeSheets{}, testDispatcher())

	seedCode(repo, "mehmet@example.com", "123456")
	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	seedCode(repo, "mehmet@example.com", "123456")
	_, err = uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.Len(t, repo.appointments, 2)

	seedMondayHours(repo, 2)
	slots, err := NewListSlots(repo).Execute(context.Background(), 2, mondayDate)
	require.NoError(t, err)
	for _, s := range slots {
		if s.Time == "10:00" {
			assert.False(t, s.Available)
		}
	}
}

func TestBookAppointmentMailFailureDoesNotBlock(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	seedCode(repo, "mehmet@example.com", "123456")

	mailer := &fakeMailer{err: errors.New("smtp down")}
	uc := NewBookAppointment(repo, mailer, &fakeSheets{}, testDispatcher())

	ap, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotZero(t, ap.ID)
}

func TestBookAppointmentAutomaticExport(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	seedCode(repo, "mehmet@example.com", "123456")
	repo.settings = &models.SheetsSettings{
		ID:            1,
		Connected:     true,
		SpreadsheetID: "sheet-1",
		SheetName:     "Randevular",
		Mode:          models.SheetsModeAutomatic,
	}

	gateway := &fakeSheets{}
	uc := NewBookAppointment(repo, &fakeMailer{}, gateway, testDispatcher())

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	require.Len(t, gateway.rows, 1)
	assert.Equal(t, "Mehmet Demir", gateway.rows[0]["fullName"])
	assert.Equal(t, "2024-07-01", gateway.rows[0]["date"])
}

func TestBookAppointmentManualModeSkipsExport(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	seedCode(repo, "mehmet@example.com", "123456")
	repo.settings = &models.SheetsSettings{
		ID:            1,
		Connected:     true,
		SpreadsheetID: "sheet-1",
		SheetName:     "Randevular",
		Mode:          models.SheetsModeManual,
	}

	gateway := &fakeSheets{}
	uc := NewBookAppointment(repo, &fakeMailer{}, gateway, testDispatcher())

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.Empty(t, gateway.rows)
}
