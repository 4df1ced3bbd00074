package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lunaweb/repair_shop/internal/models"
	"github.com/lunaweb/repair_shop/internal/transport"
)

func (r *GormRepo) ListBusinessHours(ctx context.Context) ([]models.BusinessHour, error) {
	var items []models.BusinessHour
	if err := r.DB.WithContext(ctx).Order("day_of_week ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) UpsertBusinessHour(ctx context.Context, h *models.BusinessHour) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "day_of_week"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"is_open", "morning_open", "morning_close", "afternoon_open", "afternoon_close",
		}),
	}).Create(h).Error
}

func (r *GormRepo) ListHolidays(ctx context.Context, activeOnly bool) ([]models.Holiday, error) {
	q := r.DB.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true).Order("start_date ASC")
	} else {
		q = q.Order("start_date DESC")
	}
	var items []models.Holiday
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateHoliday(ctx context.Context, h *models.Holiday) error {
	return r.DB.WithContext(ctx).Create(h).Error
}

func (r *GormRepo) PatchHoliday(ctx context.Context, id uint, req transport.PatchHolidayRequest) (*models.Holiday, error) {
	var h models.Holiday
	if err := r.DB.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.StartDate != nil {
		h.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		h.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}

	if err := r.DB.WithContext(ctx).Save(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *GormRepo) DeleteHoliday(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Holiday{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
