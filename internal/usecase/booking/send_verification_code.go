package booking

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	domain "github.com/saltain/randevux/internal/domain/booking"
	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/mail"
	"github.com/saltain/randevux/internal/models"
)

const codeTTL = 10 * time.Minute

type SendVerificationCode struct {
	repo   domain.Repository
	mailer domain.Mailer
}

func NewSendVerificationCode(
	repo domain.Repository,
	mailer domain.Mailer,
) *SendVerificationCode {
	return &SendVerificationCode{
		repo:   repo,
		mailer: mailer,
	}
}

// Execute issues a fresh 6-digit code for the email, replacing any pending
// one, and delivers it. The bound name/phone ride along for the booking step.
func (uc *SendVerificationCode) Execute(
	ctx context.Context,
	email string,
	name string,
	phone string,
) error {

	if email == "" {
		return httperr.ErrBusiness("email_required")
	}

	code := fmt.Sprintf("%d", 100000+rand.Intn(900000))

	vc := &models.VerificationCode{
		Email:     strings.ToLower(email),
		Code:      code,
		Name:      name,
		Phone:     domain.NormalizePhone(phone),
		ExpiresAt: time.Now().Add(codeTTL),
		CreatedAt: time.Now(),
	}

	if err := uc.repo.SaveVerificationCode(ctx, vc); err != nil {
		return err
	}

	return uc.mailer.Send(ctx, domain.EmailMessage{
		To:      email,
		Subject: "Randevux Doğrulama Kodunuz",
		Body:    mail.VerificationBody(name, code),
	})
}
