package booking

import (
	"context"

	"github.com/saltain/randevux/internal/audit"
	domain "github.com/saltain/randevux/internal/domain/booking"
	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/mail"
)

// SendReminder is triggered by an admin for an upcoming appointment. Unlike
// the post-booking notifications this one surfaces delivery failures, since
// the admin is waiting on the result.
type SendReminder struct {
	repo   domain.Repository
	mailer domain.Mailer
	audit  *audit.Dispatcher
}

func NewSendReminder(
	repo domain.Repository,
	mailer domain.Mailer,
	auditDispatcher *audit.Dispatcher,
) *SendReminder {
	return &SendReminder{
		repo:   repo,
		mailer: mailer,
		audit:  auditDispatcher,
	}
}

func (uc *SendReminder) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	err = uc.mailer.Send(ctx, domain.EmailMessage{
		To:      ap.Email,
		Subject: "Randevu Hatırlatması",
		Body:    mail.ReminderBody(ap.FullName, ap.Date, ap.Time, ap.ServiceName, ap.DoctorName),
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reminder_sent",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
