package booking

import (
	"context"

	domain "github.com/saltain/randevux/internal/domain/booking"
	"github.com/saltain/randevux/internal/httperr"
)

// SyncSheet pushes every appointment to the configured spreadsheet, oldest
// date first. It works in manual mode too; that is what the sync button in
// the back office is for.
type SyncSheet struct {
	repo   domain.Repository
	sheets domain.SheetsGateway
}

func NewSyncSheet(
	repo domain.Repository,
	sheets domain.SheetsGateway,
) *SyncSheet {
	return &SyncSheet{
		repo:   repo,
		sheets: sheets,
	}
}

func (uc *SyncSheet) Execute(ctx context.Context) error {
	settings, err := uc.repo.GetSheetsSettings(ctx)
	if err != nil {
		return err
	}

	if !settings.Connected {
		return httperr.ErrBusiness("sheets_not_connected")
	}

	appointments, err := uc.repo.ListAppointmentsForExport(ctx)
	if err != nil {
		return err
	}

	for i := range appointments {
		if err := uc.sheets.AppendRow(ctx, settings, appointmentRow(&appointments[i])); err != nil {
			return err
		}
	}

	return nil
}
