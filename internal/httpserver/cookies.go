package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lunaweb/repair_shop/internal/middleware"
	"github.com/lunaweb/repair_shop/internal/tokens"
)

func authCookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

func expiredCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

func setTokenCookies(c echo.Context, pair *tokens.Pair) {
	c.SetCookie(authCookie(middleware.AccessCookie, pair.AccessToken, tokens.AccessTTL))
	c.SetCookie(authCookie(middleware.RefreshCookie, pair.RefreshToken, tokens.RefreshTTL))
}

func clearTokenCookies(c echo.Context) {
	c.SetCookie(expiredCookie(middleware.AccessCookie))
	c.SetCookie(expiredCookie(middleware.RefreshCookie))
}
