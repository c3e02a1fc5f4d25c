package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/models"
)

func seedAppointment(repo *fakeRepo, status string) uint {
	repo.nextID++
	repo.appointments = append(repo.appointments, &models.Appointment{
		ID:       repo.nextID,
		FullName: "Mehmet Demir",
		Email:    "mehmet@example.com",
		DoctorID: 2,
		Date:     "2024-07-01",
		Time:     "10:00",
		Status:   status,
	})
	return repo.nextID
}

func TestConfirmPendingAppointment(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(repo, "pending")
	uc := NewConfirmAppointment(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), 1, id)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", ap.Status)
	assert.NotNil(t, ap.ConfirmedAt)

	stored, _ := repo.GetAppointment(context.Background(), id)
	assert.Equal(t, "confirmed", stored.Status)
}

func TestConfirmRejectsNonPending(t *testing.T) {
	repo := newFakeRepo()
	uc := NewConfirmAppointment(repo, testDispatcher())

	for _, status := range []string{"confirmed", "cancelled"} {
		id := seedAppointment(repo, status)
		_, err := uc.Execute(context.Background(), 1, id)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), status)
	}
}

func TestConfirmUnknownAppointment(t *testing.T) {
	uc := NewConfirmAppointment(newFakeRepo(), testDispatcher())

	_, err := uc.Execute(context.Background(), 1, 42)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancelPendingAndConfirmed(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelAppointment(repo, testDispatcher())

	for _, status := range []string{"pending", "confirmed"} {
		id := seedAppointment(repo, status)
		ap, err := uc.Execute(context.Background(), 1, id)
		require.NoError(t, err, status)
		assert.Equal(t, "cancelled", ap.Status)
		assert.NotNil(t, ap.CancelledAt)
	}
}

func TestCancelRejectsCancelled(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(repo, "cancelled")
	uc := NewCancelAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 1, id)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestSendReminderSurfacesMailError(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(repo, "confirmed")

	mailer := &fakeMailer{err: assert.AnError}
	uc := NewSendReminder(repo, mailer, testDispatcher())

	err := uc.Execute(context.Background(), 1, id)
	assert.Error(t, err)
}

func TestSendReminder(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(repo, "confirmed")

	mailer := &fakeMailer{}
	uc := NewSendReminder(repo, mailer, testDispatcher())

	require.NoError(t, uc.Execute(context.Background(), 1, id))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Randevu Hatırlatması", mailer.sent[0].Subject)
	assert.Equal(t, "mehmet@example.com", mailer.sent[0].To)
}
