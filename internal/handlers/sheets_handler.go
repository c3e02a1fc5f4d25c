package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saltain/randevux/internal/audit"
	domain "github.com/saltain/randevux/internal/domain/booking"
	"github.com/saltain/randevux/internal/httperr"
	"github.com/saltain/randevux/internal/middleware"
	"github.com/saltain/randevux/internal/models"
	"github.com/saltain/randevux/internal/sheets"
	booking "github.com/saltain/randevux/internal/usecase/booking"
)

// SheetsHandler manages the Google Sheets export configuration and the
// manual sync action.
type SheetsHandler struct {
	repo    domain.Repository
	gateway domain.SheetsGateway
	sync    *booking.SyncSheet
	audit   *audit.Dispatcher
}

func NewSheetsHandler(
	repo domain.Repository,
	gateway domain.SheetsGateway,
	syncUC *booking.SyncSheet,
	auditDispatcher *audit.Dispatcher,
) *SheetsHandler {
	return &SheetsHandler{
		repo:    repo,
		gateway: gateway,
		sync:    syncUC,
		audit:   auditDispatcher,
	}
}

// --------- Requests ---------

type SaveSheetsSettingsRequest struct {
	SpreadsheetID *string                 `json:"spreadsheet_id,omitempty"`
	SheetName     *string                 `json:"sheet_name,omitempty"`
	Mappings      *[]sheets.ColumnMapping `json:"mappings,omitempty"`
	Mode          *string                 `json:"mode,omitempty"`
}

type ConnectSheetsRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" binding:"required"`
	SheetName     string `json:"sheet_name" binding:"required"`
}

// --------- Handlers ---------

func (h *SheetsHandler) GetSettings(c *gin.Context) {
	settings, err := h.repo.GetSheetsSettings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Ayarlar yüklenemedi.")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// SaveSettings merges the request onto the stored singleton. Connected is
// never toggled here; that is Connect's job.
func (h *SheetsHandler) SaveSettings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SaveSheetsSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Geçersiz istek.")
		return
	}

	settings, err := h.repo.GetSheetsSettings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Ayarlar yüklenemedi.")
		return
	}

	if req.SpreadsheetID != nil {
		settings.SpreadsheetID = *req.SpreadsheetID
	}
	if req.SheetName != nil {
		settings.SheetName = *req.SheetName
	}
	if req.Mappings != nil {
		encoded, err := sheets.EncodeMappings(*req.Mappings)
		if err != nil {
			httperr.BadRequest(c, "invalid_mappings", "Sütun eşleştirmeleri geçersiz.")
			return
		}
		settings.Mappings = encoded
	}
	if req.Mode != nil {
		if *req.Mode != models.SheetsModeAutomatic && *req.Mode != models.SheetsModeManual {
			httperr.BadRequest(c, "invalid_mode", "Mod automatic veya manual olmalıdır.")
			return
		}
		settings.Mode = *req.Mode
	}

	if err := h.repo.SaveSheetsSettings(c.Request.Context(), settings); err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Ayarlar kaydedilemedi.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "sheets_settings_updated",
		Entity: "sheets_settings",
	})

	c.JSON(http.StatusOK, settings)
}

func (h *SheetsHandler) Connect(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ConnectSheetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Tablo ID ve sayfa adı gereklidir.")
		return
	}

	settings, err := h.repo.GetSheetsSettings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Ayarlar yüklenemedi.")
		return
	}

	settings.SpreadsheetID = req.SpreadsheetID
	settings.SheetName = req.SheetName
	settings.Connected = true

	if err := h.repo.SaveSheetsSettings(c.Request.Context(), settings); err != nil {
		httperr.Internal(c, "failed_to_save_settings", "Ayarlar kaydedilemedi.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "sheets_connected",
		Entity: "sheets_settings",
	})

	c.JSON(http.StatusOK, settings)
}

// ListColumns returns the header row of the configured sheet so the back
// office can offer them in the mapping editor. Query params may override the
// stored coordinates to preview a sheet before connecting.
func (h *SheetsHandler) ListColumns(c *gin.Context) {
	settings, err := h.repo.GetSheetsSettings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Ayarlar yüklenemedi.")
		return
	}

	if v := c.Query("spreadsheet_id"); v != "" {
		settings.SpreadsheetID = v
	}
	if v := c.Query("sheet_name"); v != "" {
		settings.SheetName = v
	}

	columns, err := h.gateway.ListColumns(c.Request.Context(), settings)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"columns": columns})
}

func (h *SheetsHandler) Sync(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.sync.Execute(c.Request.Context()); err != nil {
		writeBookingError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "sheets_synced",
		Entity: "sheets_settings",
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
