package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lunaweb/repair_shop/internal/models"
	"github.com/lunaweb/repair_shop/internal/repo"
)

const (
	StatusOpen    = "open"
	StatusClosed  = "closed"
	StatusHoliday = "holiday"
)

type OpenStatus struct {
	IsOpen    bool   `json:"is_open"`
	Type      string `json:"type"`
	MessageIt string `json:"message_it"`
	MessageZh string `json:"message_zh"`
	ReopensAt string `json:"reopens_at,omitempty"`
}

// StatusService computes whether the shop is currently open. Now is
// overridable for tests and defaults to time.Now.
type StatusService struct {
	Repo     *repo.GormRepo
	Location *time.Location
	Now      func() time.Time
}

func (s *StatusService) Current(ctx context.Context) (*OpenStatus, error) {
	hours, err := s.Repo.ListBusinessHours(ctx)
	if err != nil {
		return nil, err
	}
	holidays, err := s.Repo.ListHolidays(ctx, true)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	return ComputeOpenStatus(now, loc, hours, holidays), nil
}

// ComputeOpenStatus normalizes now into the shop's timezone and walks
// holidays first, then the weekday schedule. Window comparisons work on
// zero-padded "HH:MM" strings, which order lexicographically; boundaries
// are inclusive.
func ComputeOpenStatus(now time.Time, loc *time.Location, hours []models.BusinessHour, holidays []models.Holiday) *OpenStatus {
	local := now.In(loc)
	today := local.Format("2006-01-02")
	clock := local.Format("15:04")
	day := int(local.Weekday())

	for _, h := range holidays {
		if h.IsActive && today >= h.StartDate && today <= h.EndDate {
			return &OpenStatus{
				IsOpen:    false,
				Type:      StatusHoliday,
				MessageIt: fmt.Sprintf("Chiuso - %s", h.Name),
				MessageZh: fmt.Sprintf("放假中 - %s", h.Name),
			}
		}
	}

	var todayCfg *models.BusinessHour
	for i := range hours {
		if hours[i].DayOfWeek == day {
			todayCfg = &hours[i]
			break
		}
	}

	if todayCfg == nil || !todayCfg.IsOpen {
		return &OpenStatus{
			IsOpen:    false,
			Type:      StatusClosed,
			MessageIt: "Chiuso oggi",
			MessageZh: "今日休息",
		}
	}

	inMorning := todayCfg.MorningOpen != "" && todayCfg.MorningClose != "" &&
		clock >= todayCfg.MorningOpen && clock <= todayCfg.MorningClose
	inAfternoon := todayCfg.AfternoonOpen != "" && todayCfg.AfternoonClose != "" &&
		clock >= todayCfg.AfternoonOpen && clock <= todayCfg.AfternoonClose

	if inMorning || inAfternoon {
		return &OpenStatus{
			IsOpen:    true,
			Type:      StatusOpen,
			MessageIt: "Aperto",
			MessageZh: "营业中",
		}
	}

	if todayCfg.MorningClose != "" && todayCfg.AfternoonOpen != "" &&
		clock > todayCfg.MorningClose && clock < todayCfg.AfternoonOpen {
		return &OpenStatus{
			IsOpen:    false,
			Type:      StatusClosed,
			MessageIt: fmt.Sprintf("Pausa (%s)", todayCfg.AfternoonOpen),
			MessageZh: fmt.Sprintf("午休中 (%s 开门)", todayCfg.AfternoonOpen),
			ReopensAt: todayCfg.AfternoonOpen,
		}
	}

	return &OpenStatus{
		IsOpen:    false,
		Type:      StatusClosed,
		MessageIt: "Chiuso",
		MessageZh: "已关门",
	}
}
