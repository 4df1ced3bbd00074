package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lunaweb/repair_shop/internal/logging"
	"github.com/lunaweb/repair_shop/internal/middleware"
	"github.com/lunaweb/repair_shop/internal/service"
	"github.com/lunaweb/repair_shop/internal/tokens"
	"github.com/lunaweb/repair_shop/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) SetupStatus(c echo.Context) error {
	initialized, err := h.Svc.SetupStatus(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("setup_status_failed", "error", err)
		return c.JSON(http.StatusOK, echo.Map{"success": false})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "initialized": initialized})
}

func (h *AuthHTTP) CreateAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.create_admin")

	var req transport.CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Username == "" || req.Password == "" {
		return transport.Fail(c, http.StatusBadRequest, "username and password are required")
	}

	user, err := h.Svc.CreateInitialAdmin(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword):
			return transport.Fail(c, http.StatusBadRequest, "password must be at least 6 characters")
		case errors.Is(err, service.ErrAlreadyInitialized):
			return transport.Fail(c, http.StatusForbidden, "system already initialized")
		case errors.Is(err, service.ErrUsernameTaken):
			return transport.Fail(c, http.StatusConflict, "username already exists")
		default:
			l.Error("create_admin_failed", "error", err)
			return transport.Fail(c, http.StatusInternalServerError, "internal server error")
		}
	}

	return transport.OK(c, http.StatusOK, transport.UserData{ID: user.ID, Username: user.Username})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Username == "" || req.Password == "" {
		return transport.Fail(c, http.StatusBadRequest, "username and password are required")
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 401)
			return transport.Fail(c, http.StatusUnauthorized, "invalid username or password")
		}
		l.Error("login_failed", "status", 500, "error", err)
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}

	setTokenCookies(c, res.Pair)

	return transport.OK(c, http.StatusOK, transport.LoginData{
		AccessToken:  res.Pair.AccessToken,
		RefreshToken: res.Pair.RefreshToken,
		User:         transport.UserData{ID: res.User.ID, Username: res.User.Username},
		ExpiresIn:    res.Pair.ExpiresIn(),
	})
}

func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.refresh")

	refreshToken := ""
	if ck, err := c.Cookie(middleware.RefreshCookie); err == nil && ck.Value != "" {
		refreshToken = ck.Value
	} else {
		var req transport.RefreshRequest
		if err := c.Bind(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		return transport.FailCode(c, http.StatusUnauthorized, "no refresh token provided", middleware.CodeNoRefreshToken)
	}

	res, err := h.Svc.Refresh(ctx, refreshToken)
	if err != nil {
		clearTokenCookies(c)
		switch {
		case errors.Is(err, tokens.ErrTokenExpired):
			return transport.FailCode(c, http.StatusUnauthorized, "refresh token expired", middleware.CodeTokenExpired)
		case errors.Is(err, tokens.ErrInvalidTokenType):
			return transport.FailCode(c, http.StatusUnauthorized, "wrong token type", middleware.CodeInvalidTokenType)
		case errors.Is(err, service.ErrUserNotFound):
			return transport.FailCode(c, http.StatusUnauthorized, "user no longer exists", middleware.CodeUserNotFound)
		case errors.Is(err, tokens.ErrInvalidToken):
			return transport.FailCode(c, http.StatusUnauthorized, "invalid refresh token", middleware.CodeInvalidToken)
		default:
			l.Error("refresh_failed", "error", err)
			return transport.Fail(c, http.StatusInternalServerError, "internal server error")
		}
	}

	setTokenCookies(c, res.Pair)

	return transport.OK(c, http.StatusOK, transport.RefreshData{
		AccessToken:  res.Pair.AccessToken,
		RefreshToken: res.Pair.RefreshToken,
		ExpiresIn:    res.Pair.ExpiresIn(),
	})
}

// Logout clears the convenience cookies. Issued tokens stay valid until
// natural expiry; there is no server-side revocation list.
func (h *AuthHTTP) Logout(c echo.Context) error {
	clearTokenCookies(c)
	logging.FromContext(c.Request().Context()).Info("logout")
	return transport.OK(c, http.StatusOK, nil)
}

func (h *AuthHTTP) Verify(c echo.Context) error {
	token := middleware.ExtractToken(c)
	if token == "" {
		return transport.FailCode(c, http.StatusUnauthorized, "not authenticated", middleware.CodeNoToken)
	}

	claims, err := h.Svc.Verify(token)
	if err != nil {
		return middleware.FailTokenError(c, err)
	}

	id, err := claims.UserID()
	if err != nil {
		return middleware.FailTokenError(c, err)
	}

	return transport.OK(c, http.StatusOK, transport.VerifyData{
		User:      transport.UserData{ID: id, Username: claims.Username},
		ExpiresAt: claims.ExpiresAt.Unix(),
	})
}

func (h *AuthHTTP) Me(c echo.Context) error {
	ctx := c.Request().Context()

	token := middleware.ExtractToken(c)
	if token == "" {
		return transport.FailCode(c, http.StatusUnauthorized, "not authenticated", middleware.CodeNoToken)
	}

	user, err := h.Svc.Me(ctx, token)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return transport.Fail(c, http.StatusNotFound, "user not found")
		}
		return middleware.FailTokenError(c, err)
	}

	return transport.OK(c, http.StatusOK, echo.Map{
		"user": transport.UserData{ID: user.ID, Username: user.Username},
	})
}
