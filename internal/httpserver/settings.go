package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lunaweb/repair_shop/internal/logging"
	"github.com/lunaweb/repair_shop/internal/service"
	"github.com/lunaweb/repair_shop/internal/transport"
)

type SettingsHTTP struct {
	Svc *service.SettingsService
}

func (h *SettingsHTTP) List(c echo.Context) error {
	settings, err := h.Svc.All(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_settings_failed", "error", err)
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, settings)
}

func (h *SettingsHTTP) Update(c echo.Context) error {
	key := c.Param("key")

	var req transport.UpdateSettingRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Value == nil {
		return transport.Fail(c, http.StatusBadRequest, "value is required")
	}

	if err := h.Svc.Update(c.Request().Context(), key, *req.Value); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return transport.Fail(c, http.StatusBadRequest, "key is required")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, nil)
}

func (h *SettingsHTTP) BatchUpdate(c echo.Context) error {
	var req map[string]string
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.BatchUpdate(c.Request().Context(), req); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return transport.Fail(c, http.StatusBadRequest, "no settings provided")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, nil)
}
