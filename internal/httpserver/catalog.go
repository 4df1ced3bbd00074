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

type CatalogHTTP struct {
	Svc *service.CatalogService
}

// Public listings return active rows only; the admin variants return
// everything so inactive entries stay editable.

func (h *CatalogHTTP) ListServices(c echo.Context) error {
	return h.listServices(c, true)
}

func (h *CatalogHTTP) ListServicesAdmin(c echo.Context) error {
	return h.listServices(c, false)
}

func (h *CatalogHTTP) listServices(c echo.Context, activeOnly bool) error {
	svcs, err := h.Svc.ListServices(c.Request().Context(), activeOnly)
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_services_failed", "error", err)
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, svcs)
}

func (h *CatalogHTTP) CreateService(c echo.Context) error {
	var req transport.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	svc, err := h.Svc.CreateService(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return transport.Fail(c, http.StatusBadRequest, "category and both titles are required")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusCreated, svc)
}

func (h *CatalogHTTP) PatchService(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid id")
	}

	var req transport.PatchServiceRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	svc, err := h.Svc.PatchService(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transport.Fail(c, http.StatusNotFound, "service not found")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, svc)
}

func (h *CatalogHTTP) DeleteService(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.DeleteService(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transport.Fail(c, http.StatusNotFound, "service not found")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, nil)
}

func (h *CatalogHTTP) ListCategories(c echo.Context) error {
	cats, err := h.Svc.ListCategories(c.Request().Context())
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_categories_failed", "error", err)
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, cats)
}

func (h *CatalogHTTP) CreateCategory(c echo.Context) error {
	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	cat, err := h.Svc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return transport.Fail(c, http.StatusBadRequest, "both names and a slug are required")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusCreated, cat)
}

func (h *CatalogHTTP) DeleteCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.DeleteCategory(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transport.Fail(c, http.StatusNotFound, "category not found")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, nil)
}

func (h *CatalogHTTP) ListCarriers(c echo.Context) error {
	return h.listCarriers(c, true)
}

func (h *CatalogHTTP) ListCarriersAdmin(c echo.Context) error {
	return h.listCarriers(c, false)
}

func (h *CatalogHTTP) listCarriers(c echo.Context, activeOnly bool) error {
	carriers, err := h.Svc.ListCarriers(c.Request().Context(), activeOnly)
	if err != nil {
		logging.FromContext(c.Request().Context()).Error("list_carriers_failed", "error", err)
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, carriers)
}

func (h *CatalogHTTP) CreateCarrier(c echo.Context) error {
	var req transport.CreateCarrierRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	carrier, err := h.Svc.CreateCarrier(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return transport.Fail(c, http.StatusBadRequest, "name and tracking url are required")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusCreated, carrier)
}

func (h *CatalogHTTP) PatchCarrier(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid id")
	}

	var req transport.PatchCarrierRequest
	if err := c.Bind(&req); err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid body")
	}

	carrier, err := h.Svc.PatchCarrier(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transport.Fail(c, http.StatusNotFound, "carrier not found")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, carrier)
}

func (h *CatalogHTTP) DeleteCarrier(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return transport.Fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.DeleteCarrier(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return transport.Fail(c, http.StatusNotFound, "carrier not found")
		}
		return transport.Fail(c, http.StatusInternalServerError, "internal server error")
	}
	return transport.OK(c, http.StatusOK, nil)
}
