package auth

import (
	"errors"
	"testing"
	"time"

	"zoo-procure-hub/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const secret = "0123456789abcdef0123"

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager(secret, time.Hour)

	tok, err := m.Issue("u1", user.RoleSupplier)
	require.NoError(t, err)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, user.RoleSupplier, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager(secret, time.Hour)

	_, err := m.Issue("u1", user.Role("root"))
	assert.Error(t, err)

	tok, err := m.Issue("u1", user.RoleAdmin)
	require.NoError(t, err)

	other := NewJWTManager("another-secret-0000000", time.Hour)
	_, err = other.Parse(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = m.Parse(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken), "expired token must fail: %v", err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u1", Role: user.RoleAdmin}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = NewJWTManager(secret, time.Hour).Parse(none)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, h.Compare(hash, "s3cret!"))
	assert.False(t, h.Compare(hash, "wrong"))

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
}
