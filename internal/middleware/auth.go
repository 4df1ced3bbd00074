package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lunaweb/repair_shop/internal/tokens"
	"github.com/lunaweb/repair_shop/internal/transport"
)

// 401 codes the client auth controller dispatches on. TOKEN_EXPIRED is the
// only one that triggers an automatic refresh.
const (
	CodeNoToken          = "NO_TOKEN"
	CodeInvalidToken     = "INVALID_TOKEN"
	CodeInvalidTokenType = "INVALID_TOKEN_TYPE"
	CodeTokenExpired     = "TOKEN_EXPIRED"
	CodeNoRefreshToken   = "NO_REFRESH_TOKEN"
	CodeUserNotFound     = "USER_NOT_FOUND"
)

const (
	AccessCookie  = "access_token"
	RefreshCookie = "refresh_token"
)

// ExtractToken pulls the access credential from the cookie first, then the
// Authorization header, so browser and bearer clients share one path.
func ExtractToken(c echo.Context) string {
	if ck, err := c.Cookie(AccessCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return after
	}
	return ""
}

type AuthMiddleware struct {
	Tokens *tokens.Manager
}

func NewAuthMiddleware(m *tokens.Manager) *AuthMiddleware {
	return &AuthMiddleware{Tokens: m}
}

func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ExtractToken(c)
		if token == "" {
			return transport.FailCode(c, http.StatusUnauthorized, "not authenticated", CodeNoToken)
		}

		claims, err := m.Tokens.ParseAccess(token)
		if err != nil {
			return FailTokenError(c, err)
		}

		c.Set("user_id", claims.Subject)
		c.Set("username", claims.Username)
		return next(c)
	}
}

// FailTokenError maps token verification errors onto the 401 codes above.
func FailTokenError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, tokens.ErrTokenExpired):
		return transport.FailCode(c, http.StatusUnauthorized, "access token expired", CodeTokenExpired)
	case errors.Is(err, tokens.ErrInvalidTokenType):
		return transport.FailCode(c, http.StatusUnauthorized, "wrong token type", CodeInvalidTokenType)
	default:
		return transport.FailCode(c, http.StatusUnauthorized, "invalid token", CodeInvalidToken)
	}
}
