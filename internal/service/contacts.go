package service

import (
	"context"
	"regexp"
	"time"

	"github.com/lunaweb/repair_shop/internal/events"
	"github.com/lunaweb/repair_shop/internal/logging"
	"github.com/lunaweb/repair_shop/internal/models"
	"github.com/lunaweb/repair_shop/internal/notify"
	"github.com/lunaweb/repair_shop/internal/repo"
	"github.com/lunaweb/repair_shop/internal/transport"
	"github.com/lunaweb/repair_shop/internal/turnstile"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactService struct {
	Repo     *repo.GormRepo
	Events   *events.Producer
	Notifier *notify.Notifier
	Captcha  *turnstile.Verifier
}

func (s *ContactService) Create(ctx context.Context, req transport.CreateContactRequest, remoteIP string) (*models.ContactMessage, error) {
	l := logging.FromContext(ctx).With("svc", "contacts.create")

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

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return nil, ErrValidation
	}
	if !emailRe.MatchString(req.Email) {
		return nil, ErrValidation
	}

	msg := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := s.Repo.CreateContact(ctx, &msg); err != nil {
		return nil, err
	}

	if err := s.Events.Publish(ctx, events.TopicContacts, req.Email, events.ContactEvent{
		Type: "contact_created", ID: msg.ID, At: time.Now().Unix(),
	}); err != nil {
		l.Warn("event_publish_failed", "error", err)
	}

	if s.Notifier.Enabled() {
		if err := s.Notifier.Send(ctx, "Nuovo messaggio", req.Name, "repair-shop"); err != nil {
			l.Warn("push_notify_failed", "error", err)
		}
	}

	l.Info("contact_created", "id", msg.ID)
	return &msg, nil
}

func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.Repo.ListContacts(ctx)
}

func (s *ContactService) MarkRead(ctx context.Context, id uint) error {
	return s.Repo.MarkContactRead(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id uint) error {
	return s.Repo.DeleteContact(ctx, id)
}
