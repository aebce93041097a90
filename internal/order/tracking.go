package order

import (
	"errors"
	"net/url"
	"strings"
)

// TrackingPath adalah path publik halaman tracking. Link ini dibagikan ke pelanggan,
// jadi formatnya tidak boleh berubah.
const TrackingPath = "/track"

var (
	ErrInvalidTrackingLink = errors.New("link tracking tidak valid")
	// ErrTrackingUnavailable menyatukan "tidak ditemukan" dan gagal menghubungi backend.
	ErrTrackingUnavailable = errors.New("Pesanan tidak ditemukan. Periksa kembali Order ID Anda.")
)

// TrackingLink: <origin>/track?id=<orderId>
func TrackingLink(origin, orderID string) string {
	q := url.Values{}
	q.Set("id", orderID)
	return strings.TrimRight(origin, "/") + TrackingPath + "?" + q.Encode()
}

// OrderIDFromTrackingLink adalah kebalikan dari TrackingLink.
func OrderIDFromTrackingLink(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", ErrInvalidTrackingLink
	}
	if !strings.HasSuffix(u.Path, TrackingPath) {
		return "", ErrInvalidTrackingLink
	}
	id := u.Query().Get("id")
	if id == "" {
		return "", ErrInvalidTrackingLink
	}
	return id, nil
}
