// Package session menyimpan state sementara di Redis: handoff antar halaman dan sesi admin.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/order"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrHandoffNotFound dikembalikan saat token tidak ada atau sudah kedaluwarsa.
var ErrHandoffNotFound = errors.New("data sementara tidak ditemukan atau sudah kedaluwarsa")

// Handoff memindahkan data dari satu halaman ke halaman berikutnya lewat token acak.
// Draft dibaca berkali-kali dan dihapus eksplisit setelah order berhasil dibuat.
// Confirmation hanya bisa dibaca sekali.
type Handoff struct {
	rdb             *redis.Client
	draftTTL        time.Duration
	confirmationTTL time.Duration
}

func NewHandoff(rdb *redis.Client, draftTTL, confirmationTTL time.Duration) *Handoff {
	if draftTTL <= 0 {
		draftTTL = TTLDraft
	}
	if confirmationTTL <= 0 {
		confirmationTTL = TTLConfirmation
	}
	return &Handoff{rdb: rdb, draftTTL: draftTTL, confirmationTTL: confirmationTTL}
}

func (h *Handoff) PutDraft(ctx context.Context, d order.Draft) (string, error) {
	return h.put(ctx, KeyDraft, d, h.draftTTL)
}

func (h *Handoff) GetDraft(ctx context.Context, token string) (*order.Draft, error) {
	var d order.Draft
	if err := h.get(ctx, fmt.Sprintf(KeyDraft, token), &d, false); err != nil {
		return nil, err
	}
	return &d, nil
}

func (h *Handoff) DeleteDraft(ctx context.Context, token string) error {
	return h.rdb.Del(ctx, fmt.Sprintf(KeyDraft, token)).Err()
}

func (h *Handoff) PutConfirmation(ctx context.Context, c order.Confirmation) (string, error) {
	return h.put(ctx, KeyConfirmation, c, h.confirmationTTL)
}

// TakeConfirmation membaca lalu menghapus snapshot secara atomik (GETDEL).
func (h *Handoff) TakeConfirmation(ctx context.Context, token string) (*order.Confirmation, error) {
	var c order.Confirmation
	if err := h.get(ctx, fmt.Sprintf(KeyConfirmation, token), &c, true); err != nil {
		return nil, err
	}
	return &c, nil
}

func (h *Handoff) put(ctx context.Context, keyTemplate string, v any, ttl time.Duration) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("gagal serialize handoff: %w", err)
	}
	token := uuid.NewString()
	if err := h.rdb.Set(ctx, fmt.Sprintf(keyTemplate, token), payload, ttl).Err(); err != nil {
		return "", fmt.Errorf("gagal menyimpan handoff: %w", err)
	}
	return token, nil
}

func (h *Handoff) get(ctx context.Context, key string, out any, consume bool) error {
	var (
		val string
		err error
	)
	if consume {
		val, err = h.rdb.GetDel(ctx, key).Result()
	} else {
		val, err = h.rdb.Get(ctx, key).Result()
	}
	if errors.Is(err, redis.Nil) {
		return ErrHandoffNotFound
	}
	if err != nil {
		return fmt.Errorf("gagal membaca handoff: %w", err)
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return fmt.Errorf("handoff rusak: %w", err)
	}
	return nil
}
