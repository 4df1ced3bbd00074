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

type HoursHTTP struct {
	Svc    *service.HoursService
	Status *service.StatusService
}

func (h *HoursHTTP) ListBusinessHours(c echo.Context) error {
	hours, err := h.Svc.ListBusinessHours(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_hours_failed", "error", err)
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, hours)
}

func (h *HoursHTTP) UpsertBusinessHour(c echo.Context) error {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid day")
	}

	var req transport.UpsertBusinessHourRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	hour, err := h.Svc.UpsertBusinessHour(c.Request().Context(), day, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return transport.Fail(c, http.StatusBadRequest, "day must be between 0 and 6")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, hour)
}

func (h *HoursHTTP) ListHolidays(c echo.Context) error {
	return h.listHolidays(c, true)
}

func (h *HoursHTTP) ListHolidaysAdmin(c echo.Context) error {
	return h.listHolidays(c, false)
}

func (h *HoursHTTP) listHolidays(c echo.Context, activeOnly bool) error {
	holidays, err := h.Svc.ListHolidays(c.Request().Context(), activeOnly)
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_holidays_failed", "error", err)
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, holidays)
}

func (h *HoursHTTP) CreateHoliday(c echo.Context) error {
	var req transport.CreateHolidayRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	holiday, err := h.Svc.CreateHoliday(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return transport.Fail(c, http.StatusBadRequest, "name, start date and end date are required")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusCreated, holiday)
}

func (h *HoursHTTP) PatchHoliday(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid id")
	}

	var req transport.PatchHolidayRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	holiday, err := h.Svc.PatchHoliday(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transport.Fail(c, http.StatusNotFound, "holiday not found")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, holiday)
}

func (h *HoursHTTP) DeleteHoliday(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.DeleteHoliday(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transport.Fail(c, http.StatusNotFound, "holiday not found")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, nil)
}

func (h *HoursHTTP) OpenStatus(c echo.Context) error {
	status, err := h.Status.Current(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("open_status_failed", "error", err)
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, status)
}
