package rest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const userContextKey = "eventroca.user"

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims mirrors the payload issued at login.
type Claims struct {
	UserID    int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Sign issues a token for claims, valid for ttl.
func (a *Authenticator) Sign(claims Claims, ttl time.Duration) (string, error) {
	if claims.UserID <= 0 {
		return "", ErrInvalidToken
	}
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(a.secret)
}

func (a *Authenticator) Validate(tokenString string) (*Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func tokenFromHeader(authHeader string) (string, error) {
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(parts[1]), nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified claims on the echo context.
func (h *Handler) RequireAuth(auth *Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := tokenFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
			var claims *Claims
			if err == nil {
				claims, err = auth.Validate(token)
			}
			if err != nil {
				key := "error.unauthorized"
				if errors.Is(err, ErrInvalidToken) {
					key = "error.invalid_token"
				}
				return c.JSON(http.StatusUnauthorized, errorResponse{Code: codeUnauthorized, Message: h.t(c, key, nil)})
			}

			c.Set(userContextKey, claims)
			return next(c)
		}
	}
}

func userFrom(c echo.Context) *Claims {
	claims, _ := c.Get(userContextKey).(*Claims)
	return claims
}
