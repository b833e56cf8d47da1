package rest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestAuthenticatorRoundTrip(t *testing.T) {
	auth := NewAuthenticator(testSecret)

	token, err := auth.Sign(Claims{UserID: 42, Username: "ana", FirstName: "Ana", LastName: "García"}, time.Hour)
	require.NoError(t, err)

	claims, err := auth.Validate(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "ana", claims.Username)
	require.Equal(t, "García", claims.LastName)
}

func TestAuthenticatorRejects(t *testing.T) {
	auth := NewAuthenticator(testSecret)

	_, err := auth.Validate("")
	require.ErrorIs(t, err, ErrMissingToken)

	expired, err := auth.Sign(Claims{UserID: 42}, -time.Minute)
	require.NoError(t, err)
	_, err = auth.Validate(expired)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = auth.Sign(Claims{UserID: 0}, time.Hour)
	require.ErrorIs(t, err, ErrInvalidToken)

	// tokens without a user id are useless to the service
	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"username": "ana"}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = auth.Validate(noUser)
	require.ErrorIs(t, err, ErrInvalidToken)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"id": 42}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = auth.Validate(hs512)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenFromHeader(t *testing.T) {
	token, err := tokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	token, err = tokenFromHeader("bearer   abc")
	require.NoError(t, err)
	require.Equal(t, "abc", token)

	for _, h := range []string{"", "Bearer", "Token abc", "Bearer a b"} {
		_, err := tokenFromHeader(h)
		require.ErrorIs(t, err, ErrMissingToken, h)
	}
}
