package service

import (
	"strings"
	"testing"
	"time"

	"upperskills/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Cleanup(restoreGlobals)
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }

	issuer := NewTokenIssuer("s3cret", 7*24*time.Hour)
	u := &model.User{ID: uuid.New(), Role: model.RoleAdmin}
	tok, err := issuer.Issue(u)
	require.NoError(t, err)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
	require.Equal(t, model.RoleAdmin, claims.Role)
	require.NotEmpty(t, claims.ID)
	require.Equal(t, now.Add(7*24*time.Hour), claims.ExpiresAt.Time.UTC())

	other, err := issuer.Issue(u)
	require.NoError(t, err)
	otherClaims, err := issuer.Verify(other)
	require.NoError(t, err)
	require.NotEqual(t, claims.ID, otherClaims.ID)
}

func TestTokenExpired(t *testing.T) {
	t.Cleanup(restoreGlobals)
	now := time.Now()
	timeNow = func() time.Time { return now }
	issuer := NewTokenIssuer("s3cret", time.Hour)
	tok, err := issuer.Issue(&model.User{ID: uuid.New(), Role: model.RoleUser})
	require.NoError(t, err)

	timeNow = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = issuer.Verify(tok)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenRejected(t *testing.T) {
	t.Cleanup(restoreGlobals)
	issuer := NewTokenIssuer("s3cret", time.Hour)
	tok, err := issuer.Issue(&model.User{ID: uuid.New(), Role: model.RoleUser})
	require.NoError(t, err)

	// 竄改 payload
	parts := strings.Split(tok, ".")
	parts[1] = parts[1][:len(parts[1])-2] + "xx"
	_, err = issuer.Verify(strings.Join(parts, "."))
	require.Error(t, err)

	_, err = NewTokenIssuer("other", time.Hour).Verify(tok)
	require.Error(t, err)

	_, err = issuer.Verify("not-a-token")
	require.Error(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID:           uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Verify(unsigned)
	require.Error(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = issuer.Verify(noUser)
	require.Error(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: uuid.New()}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = issuer.Verify(noExp)
	require.Error(t, err)
}

func TestTokenIssueWithoutSecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour).Issue(&model.User{ID: uuid.New()})
	require.Error(t, err)
}
