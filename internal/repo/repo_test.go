package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lunaweb/repair_shop/internal/models"
	"github.com/lunaweb/repair_shop/internal/transport"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	r := &GormRepo{DB: db}
	require.NoError(t, r.AutoMigrate())
	return r
}

func TestSettings_UpsertAndRead(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.UpsertSetting(ctx, "shop_name", "Luna Riparazioni"))
	require.NoError(t, r.UpsertSetting(ctx, "shop_name", "Luna Riparazioni 2"))
	require.NoError(t, r.UpsertSettings(ctx, map[string]string{
		"phone": "+39 051 000000",
		"email": "info@example.it",
	}))

	settings, err := r.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Luna Riparazioni 2", settings["shop_name"])
	assert.Equal(t, "+39 051 000000", settings["phone"])
}

func TestIsInitialized_FlagLifecycle(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	init, err := r.IsInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, init)

	user := models.User{Username: "admin", PasswordHash: "x"}
	require.NoError(t, r.CreateAdminAndInitialize(ctx, &user))
	assert.NotZero(t, user.ID)

	init, err = r.IsInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, init)

	// A second bootstrap with the same username must fail and leave the
	// original record untouched.
	err = r.CreateAdminAndInitialize(ctx, &models.User{Username: "admin", PasswordHash: "y"})
	require.Error(t, err)

	stored, err := r.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "x", stored.PasswordHash)
}

func TestAppointments_Lifecycle(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	a := models.Appointment{
		Reference:    "ref-1",
		CustomerName: "Mario",
		PhoneNumber:  "333",
		DeviceModel:  "iPhone 13",
		BookingTime:  1_700_000_000,
		Status:       "pending",
	}
	require.NoError(t, r.CreateAppointment(ctx, &a))

	require.NoError(t, r.UpdateAppointmentStatus(ctx, a.ID, "confirmed"))

	got, err := r.GetAppointment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)

	err = r.UpdateAppointmentStatus(ctx, a.ID+99, "confirmed")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, r.DeleteAppointment(ctx, a.ID))
	assert.ErrorIs(t, r.DeleteAppointment(ctx, a.ID), gorm.ErrRecordNotFound)
}

func TestServices_ActiveFilterAndPatch(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateService(ctx, &models.Service{
		Category: "screen", TitleIt: "Sostituzione schermo", TitleCn: "换屏", SortOrder: 2, IsActive: true,
	}))
	inactive := models.Service{Category: "battery", TitleIt: "Batteria", TitleCn: "电池", SortOrder: 1}
	require.NoError(t, r.CreateService(ctx, &inactive))

	active, err := r.ListServices(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Sostituzione schermo", active[0].TitleIt)

	all, err := r.ListServices(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Batteria", all[0].TitleIt, "ordered by sort_order")

	on := true
	patched, err := r.PatchService(ctx, inactive.ID, transport.PatchServiceRequest{IsActive: &on})
	require.NoError(t, err)
	assert.True(t, patched.IsActive)
}

func TestBusinessHours_Upsert(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.UpsertBusinessHour(ctx, &models.BusinessHour{
		DayOfWeek: 1, IsOpen: true, MorningOpen: "09:00", MorningClose: "12:30",
	}))
	require.NoError(t, r.UpsertBusinessHour(ctx, &models.BusinessHour{
		DayOfWeek: 1, IsOpen: true, MorningOpen: "09:30", MorningClose: "12:30",
		AfternoonOpen: "15:00", AfternoonClose: "19:00",
	}))

	hours, err := r.ListBusinessHours(ctx)
	require.NoError(t, err)
	require.Len(t, hours, 1)
	assert.Equal(t, "09:30", hours[0].MorningOpen)
	assert.Equal(t, "15:00", hours[0].AfternoonOpen)
}

func TestHolidays_ActiveOrdering(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.CreateHoliday(ctx, &models.Holiday{Name: "Ferragosto", StartDate: "2026-08-15", EndDate: "2026-08-20", IsActive: true}))
	require.NoError(t, r.CreateHoliday(ctx, &models.Holiday{Name: "Natale", StartDate: "2026-12-25", EndDate: "2026-12-26", IsActive: false}))

	active, err := r.ListHolidays(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Ferragosto", active[0].Name)

	all, err := r.ListHolidays(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Natale", all[0].Name, "admin listing is newest first")
}
