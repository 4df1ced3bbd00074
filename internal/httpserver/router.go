package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lunaweb/repair_shop/internal/middleware"
	"github.com/lunaweb/repair_shop/internal/transport"
)

// Handlers bundles everything Register wires into the echo instance.
type Handlers struct {
	Auth     *AuthHTTP
	Bookings *BookingHTTP
	Contacts *ContactHTTP
	Catalog  *CatalogHTTP
	Settings *SettingsHTTP
	Hours    *HoursHTTP
	Guard    *middleware.AuthMiddleware
}

func Register(e *echo.Echo, h *Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	api := e.Group("/api")

	api.GET("", func(c echo.Context) error {
		return transport.OK(c, http.StatusOK, echo.Map{
			"name":    "repair-shop-api",
			"version": "1.0",
		})
	})

	auth := api.Group("/auth")
	auth.GET("/setup-status", h.Auth.SetupStatus)
	auth.POST("/create-admin", h.Auth.CreateAdmin)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.GET("/verify", h.Auth.Verify)
	auth.GET("/me", h.Auth.Me)
	auth.POST("/logout", h.Auth.Logout, h.Guard.RequireAuth)

	// Public site surface.
	api.POST("/bookings", h.Bookings.Create)
	api.POST("/contacts", h.Contacts.Create)
	api.GET("/services", h.Catalog.ListServices)
	api.GET("/categories", h.Catalog.ListCategories)
	api.GET("/carriers", h.Catalog.ListCarriers)
	api.GET("/settings", h.Settings.List)
	api.GET("/business-hours", h.Hours.ListBusinessHours)
	api.GET("/holidays", h.Hours.ListHolidays)
	api.GET("/status", h.Hours.OpenStatus)

	// Admin back office, JWT-guarded.
	admin := api.Group("/admin", h.Guard.RequireAuth)
	admin.GET("/bookings", h.Bookings.List)
	admin.GET("/bookings/:id", h.Bookings.Get)
	admin.PATCH("/bookings/:id/status", h.Bookings.UpdateStatus)
	admin.DELETE("/bookings/:id", h.Bookings.Delete)

	admin.GET("/contacts", h.Contacts.List)
	admin.PATCH("/contacts/:id/read", h.Contacts.MarkRead)
	admin.DELETE("/contacts/:id", h.Contacts.Delete)

	admin.GET("/services", h.Catalog.ListServicesAdmin)
	admin.POST("/services", h.Catalog.CreateService)
	admin.PATCH("/services/:id", h.Catalog.PatchService)
	admin.DELETE("/services/:id", h.Catalog.DeleteService)

	admin.POST("/categories", h.Catalog.CreateCategory)
	admin.DELETE("/categories/:id", h.Catalog.DeleteCategory)

	admin.GET("/carriers", h.Catalog.ListCarriersAdmin)
	admin.POST("/carriers", h.Catalog.CreateCarrier)
	admin.PATCH("/carriers/:id", h.Catalog.PatchCarrier)
	admin.DELETE("/carriers/:id", h.Catalog.DeleteCarrier)

	admin.PUT("/settings/:key", h.Settings.Update)
	admin.PUT("/settings", h.Settings.BatchUpdate)

	admin.PUT("/business-hours/:day", h.Hours.UpsertBusinessHour)
	admin.GET("/holidays", h.Hours.ListHolidaysAdmin)
	admin.POST("/holidays", h.Hours.CreateHoliday)
	admin.PATCH("/holidays/:id", h.Hours.PatchHoliday)
	admin.DELETE("/holidays/:id", h.Hours.DeleteHoliday)
}
