//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const signingSecret = "test-secret"

// IssueToken signs an access token the way the booking backend does, so
// the client's unverified decode sees realistic claims.
func IssueToken(t *testing.T, userID string, expiresAt time.Time) string {
	t.Helper()
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(signingSecret))
	require.NoError(t, err)
	return signed
}

func IssueExpiredToken(t *testing.T, userID string, now time.Time) string {
	t.Helper()
	return IssueToken(t, userID, now.Add(-time.Hour))
}
