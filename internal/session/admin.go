package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrSessionNotFound = errors.New("sesi admin tidak valid")

type AdminSession struct {
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminSessions menyimpan token login admin. Lookup hanya menjawab ya/tidak;
// tidak ada peran atau izin per admin.
type AdminSessions struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAdminSessions(rdb *redis.Client, ttl time.Duration) *AdminSessions {
	if ttl <= 0 {
		ttl = TTLAdminSession
	}
	return &AdminSessions{rdb: rdb, ttl: ttl}
}

func (s *AdminSessions) Create(ctx context.Context, token, name string) (*AdminSession, error) {
	sess := &AdminSession{Token: token, Name: name, CreatedAt: time.Now().UTC()}
	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, fmt.Sprintf(KeyAdminSession, token), payload, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("gagal menyimpan sesi admin: %w", err)
	}
	return sess, nil
}

func (s *AdminSessions) Lookup(ctx context.Context, token string) (*AdminSession, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	val, err := s.rdb.Get(ctx, fmt.Sprintf(KeyAdminSession, token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("gagal membaca sesi admin: %w", err)
	}
	var sess AdminSession
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *AdminSessions) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, fmt.Sprintf(KeyAdminSession, token)).Err()
}
