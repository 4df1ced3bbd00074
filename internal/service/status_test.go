package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lunaweb/repair_shop/internal/models"
)

// Mondays in the test schedule: morning 09:00-12:30, afternoon 15:00-19:00.
func testWeek() []models.BusinessHour {
	return []models.BusinessHour{
		{DayOfWeek: 1, IsOpen: true, MorningOpen: "09:00", MorningClose: "12:30", AfternoonOpen: "15:00", AfternoonClose: "19:00"},
		{DayOfWeek: 2, IsOpen: false},
	}
}

// 2026-01-05 is a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2026, 1, 5, hour, min, 0, 0, time.UTC)
}

func TestComputeOpenStatus(t *testing.T) {
	t.Parallel()

	hours := testWeek()

	tests := []struct {
		name       string
		now        time.Time
		holidays   []models.Holiday
		wantOpen   bool
		wantType   string
		wantItalia string
	}{
		{
			name: "holiday wins over schedule",
			now:  monday(10, 0),
			holidays: []models.Holiday{
				{Name: "Epifania", StartDate: "2026-01-05", EndDate: "2026-01-06", IsActive: true},
			},
			wantOpen:   false,
			wantType:   StatusHoliday,
			wantItalia: "Chiuso - Epifania",
		},
		{
			name: "inactive holiday is ignored",
			now:  monday(10, 0),
			holidays: []models.Holiday{
				{Name: "Epifania", StartDate: "2026-01-05", EndDate: "2026-01-06", IsActive: false},
			},
			wantOpen:   true,
			wantType:   StatusOpen,
			wantItalia: "Aperto",
		},
		{
			name:       "morning window open",
			now:        monday(9, 0),
			wantOpen:   true,
			wantType:   StatusOpen,
			wantItalia: "Aperto",
		},
		{
			name:       "lunch break reports reopening time",
			now:        monday(13, 0),
			wantOpen:   false,
			wantType:   StatusClosed,
			wantItalia: "Pausa (15:00)",
		},
		{
			name:       "afternoon window open at closing minute",
			now:        monday(19, 0),
			wantOpen:   true,
			wantType:   StatusOpen,
			wantItalia: "Aperto",
		},
		{
			name:       "after hours",
			now:        monday(20, 0),
			wantOpen:   false,
			wantType:   StatusClosed,
			wantItalia: "Chiuso",
		},
		{
			name:       "closed weekday",
			now:        time.Date(2026, 1, 6, 10, 0, 0, 0, time.UTC), // Tuesday
			wantOpen:   false,
			wantType:   StatusClosed,
			wantItalia: "Chiuso oggi",
		},
		{
			name:       "unconfigured weekday",
			now:        time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC), // Wednesday
			wantOpen:   false,
			wantType:   StatusClosed,
			wantItalia: "Chiuso oggi",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ComputeOpenStatus(tt.now, time.UTC, hours, tt.holidays)
			assert.Equal(t, tt.wantOpen, got.IsOpen)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantItalia, got.MessageIt)
		})
	}
}

func TestComputeOpenStatus_TimezoneNormalization(t *testing.T) {
	t.Parallel()

	rome := time.FixedZone("CET", 60*60)
	// 08:30 UTC is 09:30 in the shop's zone, inside the morning window.
	now := time.Date(2026, 1, 5, 8, 30, 0, 0, time.UTC)

	got := ComputeOpenStatus(now, rome, testWeek(), nil)
	assert.True(t, got.IsOpen)
	assert.Equal(t, StatusOpen, got.Type)
}
