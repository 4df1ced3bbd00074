package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lunaweb/repair_shop/internal/events"
	"github.com/lunaweb/repair_shop/internal/logging"
	"github.com/lunaweb/repair_shop/internal/models"
	"github.com/lunaweb/repair_shop/internal/notify"
	"github.com/lunaweb/repair_shop/internal/repo"
	"github.com/lunaweb/repair_shop/internal/transport"
	"github.com/lunaweb/repair_shop/internal/turnstile"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrCaptchaFailed = errors.New("captcha verification failed")
)

var validBookingStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"completed": true,
	"cancelled": true,
}

type BookingService struct {
	Repo     *repo.GormRepo
	Events   *events.Producer
	Notifier *notify.Notifier
	Captcha  *turnstile.Verifier
}

// Create handles the public booking form. Event publish and push
// notification are best-effort; the booking is already committed.
func (s *BookingService) Create(ctx context.Context, req transport.CreateBookingRequest, remoteIP string) (*models.Appointment, error) {
	l := logging.FromContext(ctx).With("svc", "bookings.create")

	if s.Captcha.Enabled() {
		ok, err := s.Captcha.Verify(ctx, req.CaptchaToken, remoteIP)
		if err != nil {
			l.Warn("captcha_unreachable", "error", err)
			return nil, ErrCaptchaFailed
		}
		if !ok {
			return nil, ErrCaptchaFailed
		}
	}

	if req.CustomerName == "" || req.PhoneNumber == "" || req.DeviceModel == "" || req.BookingTime == 0 {
		return nil, ErrValidation
	}

	appt := models.Appointment{
		Reference:          uuid.NewString(),
		CustomerName:       req.CustomerName,
		PhoneNumber:        req.PhoneNumber,
		Email:              req.Email,
		DeviceModel:        req.DeviceModel,
		ProblemDescription: req.ProblemDescription,
		BookingTime:        req.BookingTime,
		Status:             "pending",
	}
	if err := s.Repo.CreateAppointment(ctx, &appt); err != nil {
		return nil, err
	}

	if err := s.Events.Publish(ctx, events.TopicBookings, appt.Reference, events.BookingEvent{
		Type: "booking_created", ID: appt.ID, Reference: appt.Reference, Status: appt.Status, At: time.Now().Unix(),
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	if s.Notifier.Enabled() {
		msg := fmt.Sprintf("%s - %s", appt.CustomerName, appt.DeviceModel)
		if err := s.Notifier.Send(ctx, "Nuova prenotazione", msg, "repair-shop"); err != nil {
			l.Warn("push_notify_failed", "error", err)
		}
	}

	l.Info("booking_created", "id", appt.ID)
	return &appt, nil
}

func (s *BookingService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.Repo.ListAppointments(ctx)
}

func (s *BookingService) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	return s.Repo.GetAppointment(ctx, id)
}

func (s *BookingService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !validBookingStatuses[status] {
		return ErrValidation
	}
	if err := s.Repo.UpdateAppointmentStatus(ctx, id, status); err != nil {
		return err
	}

	if err := s.Events.Publish(ctx, events.TopicBookings, fmt.Sprint(id), events.BookingEvent{
		Type: "booking_status_changed", ID: id, Status: status, At: time.Now().Unix(),
	}); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "error", err)
	}
	return nil
}

func (s *BookingService) Delete(ctx context.Context, id uint) error {
	return s.Repo.DeleteAppointment(ctx, id)
}
