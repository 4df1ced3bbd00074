package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lunaweb/repair_shop/internal/models"
)

func (r *GormRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var items []models.Appointment
	if err := r.DB.WithContext(ctx).Order("booking_time DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var item models.Appointment
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *GormRepo) UpdateAppointmentStatus(ctx context.Context, id uint, status string) error {
	result := r.DB.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteAppointment(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Appointment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
