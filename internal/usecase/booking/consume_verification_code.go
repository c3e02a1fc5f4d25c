package booking

import (
	"context"
	"strings"
	"time"

	domain "github.com/saltain/randevux/internal/domain/booking"
	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/models"
)

type ConsumeVerificationCode struct {
	repo domain.Repository
}

func NewConsumeVerificationCode(repo domain.Repository) *ConsumeVerificationCode {
	return &ConsumeVerificationCode{repo: repo}
}

// Execute validates the code and deletes it on success, so a code works
// exactly once. Expired codes are rejected but left in place; a later
// re-issue overwrites them anyway.
func (uc *ConsumeVerificationCode) Execute(
	ctx context.Context,
	email string,
	code string,
) (*models.VerificationCode, error) {

	vc, err := uc.repo.GetVerificationCode(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if vc == nil {
		return nil, httperr.ErrBusiness("verification_not_found")
	}

	if vc.Code != code {
		return nil, httperr.ErrBusiness("verification_invalid")
	}

	if !time.Now().Before(vc.ExpiresAt) {
		return nil, httperr.ErrBusiness("verification_expired")
	}

	if err := uc.repo.DeleteVerificationCode(ctx, vc.Email); err != nil {
		return nil, err
	}

	return vc, nil
}
