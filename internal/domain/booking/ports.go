package booking

import (
	"context"

	"github.com/saltain/randevux/internal/models"
)

// EmailMessage is what the booking flow hands to the outbound mailer.
type EmailMessage struct {
	To      string
	Subject string
	Body    string

	// optional text/calendar attachment
	ICSFilename string
	ICSContent  string
}

type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// SheetsGateway is the spreadsheet side of the export feature.
type SheetsGateway interface {
	// AppendRow writes one appointment row using the configured mapping.
	// Incomplete settings are skipped silently, matching the export's
	// best-effort contract.
	AppendRow(
		ctx context.Context,
		settings *models.SheetsSettings,
		row map[string]string,
	) error

	ListColumns(
		ctx context.Context,
		settings *models.SheetsSettings,
	) ([]string, error)
}
