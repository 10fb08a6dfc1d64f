package session_test

import (
	"os"
	"path"
	"testing"
	"time"

	"blacktie/src/models"
	"blacktie/src/session"
	"blacktie/src/types"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func useTempSessionFile(t *testing.T) {
	t.Helper()
	file := path.Join(t.TempDir(), "session.json")
	os.Setenv("SESSION_FILE", file)
	t.Cleanup(func() {
		os.Unsetenv("SESSION_FILE")
		session.NewSession(nil)
	})
	session.NewSession(nil)
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := types.Claims{
		Username: "ada",
		Role:     types.ROLE_RENTER,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSessionRoundTrip(t *testing.T) {
	useTempSessionFile(t)

	_, err := session.Current()
	require.ErrorIs(t, err, session.ErrNoSession)

	s := session.Session{
		Token: signedToken(t, time.Now().Add(time.Hour)),
		User:  models.User{ID: 1, Name: "Ada", Role: types.ROLE_RENTER},
	}
	require.NoError(t, session.Save(s))

	got, err := session.Current()
	require.NoError(t, err)
	require.Equal(t, uint(1), got.User.ID)

	// restore from disk after the in-memory copy is dropped
	session.NewSession(nil)
	restored, err := session.Current()
	require.NoError(t, err)
	require.Equal(t, "Ada", restored.User.Name)

	require.NoError(t, session.Clear())
	_, err = session.Current()
	require.ErrorIs(t, err, session.ErrNoSession)
}

func TestClaims(t *testing.T) {
	useTempSessionFile(t)

	s := session.Session{
		Token: signedToken(t, time.Now().Add(time.Hour)),
		User:  models.User{ID: 1},
	}
	require.NoError(t, session.Save(s))

	claims, err := session.Claims()
	require.NoError(t, err)
	require.Equal(t, "ada", claims.Username)
	require.Equal(t, types.ROLE_RENTER, claims.Role)
}

func TestClaimsExpiredToken(t *testing.T) {
	useTempSessionFile(t)

	s := session.Session{
		Token: signedToken(t, time.Now().Add(-time.Hour)),
		User:  models.User{ID: 1},
	}
	require.NoError(t, session.Save(s))

	_, err := session.Claims()
	require.ErrorIs(t, err, session.ErrTokenExpired)
}

func TestClearIsIdempotent(t *testing.T) {
	useTempSessionFile(t)
	require.NoError(t, session.Clear())
	require.NoError(t, session.Clear())
}
