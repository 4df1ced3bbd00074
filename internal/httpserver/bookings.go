package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/lunaweb/repair_shop/internal/logging"
	"github.com/lunaweb/repair_shop/internal/service"
	"github.com/lunaweb/repair_shop/internal/transport"
)

type BookingHTTP struct {
	Svc *service.BookingService
}

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *BookingHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "bookings.create")

	var req transport.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	appt, err := h.Svc.Create(ctx, req, c.RealIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaFailed):
			return transport.Fail(c, http.StatusBadRequest, "captcha verification failed")
		case errors.Is(err, service.ErrValidation):
			return transport.Fail(c, http.StatusBadRequest, "missing required fields")
		default:
			l.Error("create_failed", "error", err)
			return transport.Fail(c, http.StatusInternalServerError, "internal server error")
		}
	}

	return transport.OK(c, http.StatusCreated, appt)
}

func (h *BookingHTTP) List(c echo.Context) error {
	appts, err := h.Svc.List(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_bookings_failed", "error", err)
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, appts)
}

func (h *BookingHTTP) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid id")
	}

	appt, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transport.Fail(c, http.StatusNotFound, "booking not found")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, appt)
}

func (h *BookingHTTP) UpdateStatus(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid id")
	}

	var req transport.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return transport.Fail(c, http.StatusBadRequest, "invalid status")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return transport.Fail(c, http.StatusNotFound, "booking not found")
		default:
			return transport.Fail(c, http.StatusInternalServerError, "internal server error")
		}
	}
	return transport.OK(c, http.StatusOK, nil)
}

func (h *BookingHTTP) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transport.Fail(c, http.StatusNotFound, "booking not found")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, nil)
}
