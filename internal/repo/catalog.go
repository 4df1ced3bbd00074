package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/lunaweb/repair_shop/internal/models"
	"github.com/lunaweb/repair_shop/internal/transport"
)

func (r *GormRepo) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	q := r.DB.WithContext(ctx).Order("sort_order ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var items []models.Service
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateService(ctx context.Context, s *models.Service) error {
	return r.DB.WithContext(ctx).Create(s).Error
}

func (r *GormRepo) PatchService(ctx context.Context, id uint, req transport.PatchServiceRequest) (*models.Service, error) {
	var s models.Service
	if err := r.DB.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}

	if req.Category != nil {
		s.Category = *req.Category
	}
	if req.IconName != nil {
		s.IconName = *req.IconName
	}
	if req.TitleIt != nil {
		s.TitleIt = *req.TitleIt
	}
	if req.TitleCn != nil {
		s.TitleCn = *req.TitleCn
	}
	if req.DescriptionIt != nil {
		s.DescriptionIt = *req.DescriptionIt
	}
	if req.DescriptionCn != nil {
		s.DescriptionCn = *req.DescriptionCn
	}
	if req.PriceDisplay != nil {
		s.PriceDisplay = *req.PriceDisplay
	}
	if req.SortOrder != nil {
		s.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	if err := r.DB.WithContext(ctx).Save(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormRepo) DeleteService(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	var items []models.ServiceCategory
	if err := r.DB.WithContext(ctx).Order("sort_order ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, c *models.ServiceCategory) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.ServiceCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ListCarriers(ctx context.Context, activeOnly bool) ([]models.Carrier, error) {
	q := r.DB.WithContext(ctx).Order("sort_order ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var items []models.Carrier
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateCarrier(ctx context.Context, c *models.Carrier) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *GormRepo) PatchCarrier(ctx context.Context, id uint, req transport.PatchCarrierRequest) (*models.Carrier, error) {
	var c models.Carrier
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.TrackingURL != nil {
		c.TrackingURL = *req.TrackingURL
	}
	if req.SortOrder != nil {
		c.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := r.DB.WithContext(ctx).Save(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) DeleteCarrier(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Carrier{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
