package mail

import (
	"context"
	"io"

	"gopkg.in/gomail.v2"

	"github.com/saltain/randevux/internal/config"
	"github.com/saltain/randevux/internal/domain/booking"
)

// SMTPMailer delivers booking emails over plain SMTP. Credentials come in at
// construction time.
type SMTPMailer struct {
	cfg config.MailConfig
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(_ context.Context, msg booking.EmailMessage) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.cfg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)

	if msg.ICSContent != "" {
		gm.Attach(
			msg.ICSFilename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write([]byte(msg.ICSContent))
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {"text/calendar"},
			}),
		)
	}

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	return d.DialAndSend(gm)
}
