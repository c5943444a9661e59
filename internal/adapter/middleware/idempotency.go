package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"zoo-procure-hub/internal/infrastructure/logger"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"

	// a reservation expires on its own if the process dies mid-request
	reservationTTL = 60 * time.Second
)

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// Idempotency replays the stored response of a mutating request retried with
// the same Idempotency-Key. Requests without the header pass through, and so
// does everything when rdb is nil. The key is scoped by route and user id, so
// it must run after AuthJWT.
func Idempotency(rdb *redis.Client, ttl time.Duration) echo.MiddlewareFunc {
	var store *idemStore
	if rdb != nil {
		store = &idemStore{rdb: rdb, lockTTL: reservationTTL, ttl: ttl}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if store == nil {
				return next(c)
			}
			req := c.Request()
			method := req.Method

			switch method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			idemKey := strings.TrimSpace(req.Header.Get(IdempotencyKeyHeader))
			if idemKey == "" {
				return next(c)
			}
			idemKey, ok := normalizeIdemKey(idemKey)
			if !ok {
				return c.JSON(http.StatusBadRequest, errorJSON("invalid Idempotency-Key format"))
			}
			userID, _ := c.Get(CtxUserIDKey).(string)
			if userID == "" {
				userID = "anonymous"
			}

			var body []byte
			if req.Body != nil {
				var err error
				if body, err = io.ReadAll(req.Body); err != nil {
					return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
				}
			}
			req.Body = io.NopCloser(bytes.NewReader(body))
			entry := idemEntry{
				InProgress: true,
				BodySHA256: bodyHash(body),
				Key:        idemKey,
				CreatedAt:  time.Now().UTC(),
			}

			key := scopeKey(method, c.Path(), userID, idemKey)
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()

			reserved, err := store.reserve(ctx, key, entry)
			if err != nil {
				logger.FromContext(c).Warn("idempotency store unavailable", zap.Error(err))
				return c.JSON(http.StatusServiceUnavailable, errorJSON("idempotency store unavailable"))
			}
			if !reserved {
				cur, err := store.load(ctx, key)
				if err != nil {
					logger.FromContext(c).Warn("idempotency entry unreadable", zap.String("key", key), zap.Error(err))
				}
				if cur.BodySHA256 != "" && cur.BodySHA256 != entry.BodySHA256 {
					return c.JSON(http.StatusConflict, errorJSON("Idempotency-Key reused with different body"))
				}
				if cur.replayable() {
					return c.Blob(cur.Code, echo.MIMEApplicationJSONCharsetUTF8, cur.Body)
				}
				return c.JSON(http.StatusConflict, errorJSON("request is already in progress"))
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			// server failures are not remembered so the client can retry
			if rec.code >= http.StatusInternalServerError {
				_ = store.release(context.Background(), key)
				return nil
			}
			entry.Code, entry.Body = rec.code, rec.buf.Bytes()
			if err := store.finish(context.Background(), key, entry); err != nil {
				logger.FromContext(c).Warn("idempotency entry not saved", zap.String("key", key), zap.Error(err))
			}
			return nil
		}
	}
}
