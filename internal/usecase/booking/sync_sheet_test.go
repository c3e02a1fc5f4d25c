package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/models"
)

func TestSyncSheetNotConnected(t *testing.T) {
	repo := newFakeRepo()
	gateway := &fakeSheets{}

	err := NewSyncSheet(repo, gateway).Execute(context.Background())
	assert.True(t, httperr.IsBusiness(err, "sheets_not_connected"))
	assert.Empty(t, gateway.rows)
}

func TestSyncSheetExportsOldestFirst(t *testing.T) {
	repo := newFakeRepo()
	repo.settings = &models.SheetsSettings{
		ID:            1,
		Connected:     true,
		SpreadsheetID: "sheet-1",
		SheetName:     "Randevular",
		Mode:          models.SheetsModeManual,
	}

	for _, date := range []string{"2024-07-03", "2024-07-01", "2024-07-02"} {
		repo.nextID++
		repo.appointments = append(repo.appointments, &models.Appointment{
			ID:       repo.nextID,
			FullName: "Hasta",
			Date:     date,
			Time:     "10:00",
			Status:   "pending",
		})
	}

	gateway := &fakeSheets{}
	require.NoError(t, NewSyncSheet(repo, gateway).Execute(context.Background()))

	require.Len(t, gateway.rows, 3)
	assert.Equal(t, "2024-07-01", gateway.rows[0]["date"])
	assert.Equal(t, "2024-07-02", gateway.rows[1]["date"])
	assert.Equal(t, "2024-07-03", gateway.rows[2]["date"])
}
