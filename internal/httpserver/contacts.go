package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/lunaweb/repair_shop/internal/logging"
	"github.com/lunaweb/repair_shop/internal/service"
	"github.com/lunaweb/repair_shop/internal/transport"
)

type ContactHTTP struct {
	Svc *service.ContactService
}

func (h *ContactHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contacts.create")

	var req transport.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	msg, err := h.Svc.Create(ctx, req, c.RealIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaFailed):
			return transport.Fail(c, http.StatusBadRequest, "captcha verification failed")
		case errors.Is(err, service.ErrValidation):
			return transport.Fail(c, http.StatusBadRequest, "name, valid email and message are required")
		default:
			l.Error("create_failed", "error", err)
			return transport.Fail(c, http.StatusInternalServerError, "internal server error")
		}
	}

	return transport.OK(c, http.StatusCreated, msg)
}

func (h *ContactHTTP) List(c echo.Context) error {
	msgs, err := h.Svc.List(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_contacts_failed", "error", err)
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, msgs)
}

func (h *ContactHTTP) MarkRead(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.MarkRead(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transport.Fail(c, http.StatusNotFound, "message not found")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, nil)
}

func (h *ContactHTTP) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transport.Fail(c, http.StatusNotFound, "message not found")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, nil)
}
