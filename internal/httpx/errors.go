// Package httpx berisi helper respons gin yang dipakai semua handler.
package httpx

import (
	"errors"
	"net/http"

	"storefront/internal/backend"
	"storefront/internal/order"
	"storefront/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenericNotice ditampilkan saat backend tidak bisa dihubungi. Penyebab aslinya hanya masuk log.
const GenericNotice = "Terjadi kesalahan. Silakan coba lagi."

// StatusFor memetakan error domain ke status HTTP dan pesan untuk pengguna.
func StatusFor(err error) (int, gin.H) {
	var (
		validation *order.ValidationError
		transition *order.TransitionError
		rejected   *backend.RejectedError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, gin.H{"error": validation.Message, "field": validation.Field}
	case errors.As(err, &transition):
		return http.StatusUnprocessableEntity, gin.H{"error": transition.Error()}
	case errors.As(err, &rejected):
		return http.StatusUnprocessableEntity, gin.H{"error": rejected.Error()}
	case errors.Is(err, order.ErrTrackingUnavailable):
		return http.StatusNotFound, gin.H{"error": order.ErrTrackingUnavailable.Error()}
	case errors.Is(err, backend.ErrNotFound):
		return http.StatusNotFound, gin.H{"error": "Data tidak ditemukan"}
	case errors.Is(err, session.ErrHandoffNotFound):
		return http.StatusNotFound, gin.H{"error": session.ErrHandoffNotFound.Error()}
	case errors.Is(err, session.ErrSessionNotFound):
		return http.StatusUnauthorized, gin.H{"error": "Sesi berakhir. Silakan login kembali."}
	case errors.Is(err, backend.ErrUnavailable):
		return http.StatusBadGateway, gin.H{"error": GenericNotice}
	default:
		return http.StatusInternalServerError, gin.H{"error": GenericNotice}
	}
}

// RespondError menulis respons error. Error 5xx dicatat dengan penyebab lengkap.
func RespondError(c *gin.Context, logger *zap.Logger, err error) {
	status, body := StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Int("status", status),
			zap.Error(err))
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

// BadRequest dipakai saat binding payload gagal.
func BadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request format or missing field.", "details": err.Error()})
}
