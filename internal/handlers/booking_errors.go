package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/saltain/randevux/internal/httperr"
)

// writeBookingError maps business codes onto the four user-facing error
// kinds: 400 invalid argument, 404 not found, 403 permission denied,
// 412 failed precondition.
func writeBookingError(c *gin.Context, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Beklenmeyen bir hata oluştu.")
		return
	}

	switch be.Code {
	case "missing_required_fields":
		httperr.BadRequest(c, be.Code, "Gerekli alanlar eksik.")
	case "email_required":
		httperr.BadRequest(c, be.Code, "E-posta adresi zorunludur.")
	case "invalid_date":
		httperr.BadRequest(c, be.Code, "Geçersiz tarih.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, be.Code, "Geçersiz tarih veya saat.")
	case "invalid_state":
		httperr.BadRequest(c, be.Code, "Randevu bu durumda güncellenemez.")
	case "verification_not_found":
		httperr.NotFound(c, be.Code, "Doğrulama kodu bulunamadı.")
	case "verification_invalid":
		httperr.Forbidden(c, be.Code, "Doğrulama kodu hatalı.")
	case "verification_expired":
		httperr.Forbidden(c, be.Code, "Doğrulama kodunun süresi dolmuş.")
	case "service_not_found":
		httperr.NotFound(c, be.Code, "Seçilen hizmet bulunamadı.")
	case "doctor_not_found":
		httperr.NotFound(c, be.Code, "Seçilen doktor bulunamadı.")
	case "appointment_not_found":
		httperr.NotFound(c, be.Code, "Randevu bulunamadı.")
	case "sheets_not_connected":
		httperr.FailedPrecondition(c, be.Code, "Google Sheets bağlantısı yok.")
	case "sheets_credentials_missing":
		httperr.FailedPrecondition(c, be.Code, "Google Sheets entegrasyonu için servis hesabı kimlik bilgileri gereklidir.")
	default:
		httperr.Internal(c, be.Code, "Beklenmeyen bir hata oluştu.")
	}
}
