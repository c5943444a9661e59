package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idemp:zoo"

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

// idemEntry is what a key holds: a reservation while the handler runs, then
// the captured response.
type idemEntry struct {
	CreatedAt  time.Time `json:"created_at"`
	BodySHA256 string    `json:"body_sha256"`
	Key        string    `json:"key"`
	Body       []byte    `json:"body,omitempty"`
	Code       int       `json:"code,omitempty"`
	InProgress bool      `json:"in_progress"`
}

func (e idemEntry) replayable() bool {
	return !e.InProgress && e.Code != 0 && len(e.Body) > 0
}

// idemStore keeps entries in redis. A reservation lives for lockTTL; a
// finished response for ttl.
type idemStore struct {
	rdb     redis.Cmdable
	lockTTL time.Duration
	ttl     time.Duration
}

func (s *idemStore) reserve(ctx context.Context, key string, e idemEntry) (bool, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return false, err
	}
	return s.rdb.SetNX(ctx, key, payload, s.lockTTL).Result()
}

func (s *idemStore) load(ctx context.Context, key string) (idemEntry, error) {
	var e idemEntry
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(raw, &e); err != nil {
		return e, fmt.Errorf("decode entry %s: %w", key, err)
	}
	return e, nil
}

func (s *idemStore) finish(ctx context.Context, key string, e idemEntry) error {
	e.InProgress = false
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, payload, s.ttl).Err()
}

func (s *idemStore) release(ctx context.Context, key string) error {
	err := s.rdb.Del(ctx, key).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

func scopeKey(method, path, userID, idemKey string) string {
	return strings.Join([]string{keyPrefix, strings.ToLower(method), path, userID, idemKey}, ":")
}

func bodyHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// normalizeIdemKey lowercases k and accepts an RFC 4122 uuid or 32 hex chars.
func normalizeIdemKey(k string) (string, bool) {
	k = strings.ToLower(strings.TrimSpace(k))
	if reHex32.MatchString(k) {
		return k, true
	}
	if len(k) != 36 {
		return "", false
	}
	u, err := uuid.Parse(k)
	if err != nil || u.Variant() != uuid.RFC4122 || u.Version() < 1 || u.Version() > 5 {
		return "", false
	}
	return k, true
}
