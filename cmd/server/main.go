package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/lunaweb/repair_shop/internal/config"
	"github.com/lunaweb/repair_shop/internal/events"
	"github.com/lunaweb/repair_shop/internal/httpserver"
	"github.com/lunaweb/repair_shop/internal/logging"
	"github.com/lunaweb/repair_shop/internal/middleware"
	"github.com/lunaweb/repair_shop/internal/notify"
	"github.com/lunaweb/repair_shop/internal/repo"
	"github.com/lunaweb/repair_shop/internal/service"
	"github.com/lunaweb/repair_shop/internal/tokens"
	"github.com/lunaweb/repair_shop/internal/transport"
	"github.com/lunaweb/repair_shop/internal/turnstile"
	"github.com/lunaweb/repair_shop/pkg/db"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL"))
	slog.SetDefault(logger)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("timezone %q: %v", cfg.Timezone, err)
	}

	gdb, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	r := &repo.GormRepo{DB: gdb}
	if err := r.AutoMigrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	tm := &tokens.Manager{
		AccessSecret:  cfg.JWTAccessSecret,
		RefreshSecret: cfg.JWTRefreshSecret,
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	notifier := notify.New(cfg.NotifyURL)
	captcha := turnstile.New(cfg.TurnstileSecret)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.HTTPErrorHandler = errorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Handlers{
		Auth:     &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, Tokens: tm}},
		Bookings: &httpserver.BookingHTTP{Svc: &service.BookingService{Repo: r, Events: producer, Notifier: notifier, Captcha: captcha}},
		Contacts: &httpserver.ContactHTTP{Svc: &service.ContactService{Repo: r, Events: producer, Notifier: notifier, Captcha: captcha}},
		Catalog:  &httpserver.CatalogHTTP{Svc: &service.CatalogService{Repo: r}},
		Settings: &httpserver.SettingsHTTP{Svc: &service.SettingsService{Repo: r}},
		Hours: &httpserver.HoursHTTP{
			Svc:    &service.HoursService{Repo: r},
			Status: &service.StatusService{Repo: r, Location: loc},
		},
		Guard: middleware.NewAuthMiddleware(tm),
	})

	go func() {
		addr := ":" + strconv.Itoa(cfg.ServerPort)
		logger.Info("server_starting", "addr", addr, "env", cfg.AppEnv)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_failed", "error", err)
	}
	logger.Info("server_stopped")
}

func openDatabase(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" && cfg.AppEnv == config.EnvDevelopment {
		return db.OpenSQLite("repair_shop.db")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return db.Open(ctx, cfg.DatabaseURL)
}

// errorHandler keeps unexpected errors inside the JSON envelope.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := "internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}
	if status >= 500 {
		logging.FromContext(c.Request().Context()).Error("unhandled_error", "error", err)
		msg = "internal server error"
	}

	_ = transport.Fail(c, status, msg)
}
