package sheets

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	sheetsapi "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/saltain/randevux/internal/config"
	"github.com/saltain/randevux/internal/domain/booking"
	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/models"
)

// Client talks to the Google Sheets API with a service-account identity
// provided at construction.
type Client struct {
	email      string
	privateKey string
}

var _ booking.SheetsGateway = (*Client)(nil)

func NewClient(cfg config.GoogleConfig) *Client {
	return &Client{
		email:      cfg.ServiceAccountEmail,
		privateKey: cfg.ServiceAccountKey,
	}
}

func (c *Client) service(ctx context.Context) (*sheetsapi.Service, error) {
	if c.email == "" || c.privateKey == "" {
		return nil, httperr.ErrBusiness("sheets_credentials_missing")
	}

	conf := &jwt.Config{
		Email: c.email,
		// keys pasted into env files carry literal \n sequences
		PrivateKey: []byte(strings.ReplaceAll(c.privateKey, `\n`, "\n")),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	return sheetsapi.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
}

// ListColumns reads the header row of the configured sheet. Missing
// spreadsheet id or sheet name yields an empty list, not an error.
func (c *Client) ListColumns(
	ctx context.Context,
	settings *models.SheetsSettings,
) ([]string, error) {

	if settings.SpreadsheetID == "" || settings.SheetName == "" {
		return []string{}, nil
	}

	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Spreadsheets.Values.
		Get(settings.SpreadsheetID, settings.SheetName+"!1:1").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	header := []string{}
	if len(resp.Values) > 0 {
		for _, v := range resp.Values[0] {
			header = append(header, fmt.Sprint(v))
		}
	}

	return header, nil
}

// AppendRow appends one appointment row in mapping order. Incomplete sheet
// coordinates are logged and skipped: the export never blocks a booking.
func (c *Client) AppendRow(
	ctx context.Context,
	settings *models.SheetsSettings,
	row map[string]string,
) error {

	if settings.SpreadsheetID == "" || settings.SheetName == "" {
		log.Println("sheets settings incomplete, skipping append")
		return nil
	}

	mappings, err := ParseMappings(settings.Mappings)
	if err != nil {
		return err
	}

	svc, err := c.service(ctx)
	if err != nil {
		return err
	}

	values := make([]interface{}, 0, len(mappings))
	for _, m := range mappings {
		values = append(values, row[m.Field])
	}

	_, err = svc.Spreadsheets.Values.
		Append(settings.SpreadsheetID, settings.SheetName, &sheetsapi.ValueRange{
			Values: [][]interface{}{values},
		}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()

	return err
}
