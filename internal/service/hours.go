package service

import (
	"context"

	"github.com/lunaweb/repair_shop/internal/models"
	"github.com/lunaweb/repair_shop/internal/repo"
	"github.com/lunaweb/repair_shop/internal/transport"
)

// HoursService manages the weekly schedule and holiday closures backing
// the open-status computation.
type HoursService struct {
	Repo *repo.GormRepo
}

func (s *HoursService) ListBusinessHours(ctx context.Context) ([]models.BusinessHour, error) {
	return s.Repo.ListBusinessHours(ctx)
}

func (s *HoursService) UpsertBusinessHour(ctx context.Context, dayOfWeek int, req transport.UpsertBusinessHourRequest) (*models.BusinessHour, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, ErrValidation
	}

	h := models.BusinessHour{
		DayOfWeek:      dayOfWeek,
		IsOpen:         req.IsOpen,
		MorningOpen:    req.MorningOpen,
		MorningClose:   req.MorningClose,
		AfternoonOpen:  req.AfternoonOpen,
		AfternoonClose: req.AfternoonClose,
	}
	if err := s.Repo.UpsertBusinessHour(ctx, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *HoursService) ListHolidays(ctx context.Context, activeOnly bool) ([]models.Holiday, error) {
	return s.Repo.ListHolidays(ctx, activeOnly)
}

func (s *HoursService) CreateHoliday(ctx context.Context, req transport.CreateHolidayRequest) (*models.Holiday, error) {
	if req.Name == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, ErrValidation
	}

	h := models.Holiday{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  req.IsActive == nil || *req.IsActive,
	}
	if err := s.Repo.CreateHoliday(ctx, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *HoursService) PatchHoliday(ctx context.Context, id uint, req transport.PatchHolidayRequest) (*models.Holiday, error) {
	return s.Repo.PatchHoliday(ctx, id, req)
}

func (s *HoursService) DeleteHoliday(ctx context.Context, id uint) error {
	return s.Repo.DeleteHoliday(ctx, id)
}
