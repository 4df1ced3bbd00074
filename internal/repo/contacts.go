package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lunaweb/repair_shop/internal/models"
)

func (r *GormRepo) ListContacts(ctx context.Context) ([]models.ContactMessage, error) {
	var items []models.ContactMessage
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateContact(ctx context.Context, m *models.ContactMessage) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *GormRepo) MarkContactRead(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) DeleteContact(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
