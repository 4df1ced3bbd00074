package service

import (
	"context"

	"github.com/lunaweb/repair_shop/internal/models"
	"github.com/lunaweb/repair_shop/internal/repo"
	"github.com/lunaweb/repair_shop/internal/transport"
)

// CatalogService covers the site content entities: repair services, their
// categories and the shipping carriers shown on the tracking page.
type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	return s.Repo.ListServices(ctx, activeOnly)
}

func (s *CatalogService) CreateService(ctx context.Context, req transport.CreateServiceRequest) (*models.Service, error) {
	if req.Category == "" || req.TitleIt == "" || req.TitleCn == "" {
		return nil, ErrValidation
	}

	svc := models.Service{
		Category:      req.Category,
		IconName:      req.IconName,
		TitleIt:       req.TitleIt,
		TitleCn:       req.TitleCn,
		DescriptionIt: req.DescriptionIt,
		DescriptionCn: req.DescriptionCn,
		PriceDisplay:  req.PriceDisplay,
		SortOrder:     req.SortOrder,
		IsActive:      req.IsActive == nil || *req.IsActive,
	}
	if err := s.Repo.CreateService(ctx, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *CatalogService) PatchService(ctx context.Context, id uint, req transport.PatchServiceRequest) (*models.Service, error) {
	return s.Repo.PatchService(ctx, id, req)
}

func (s *CatalogService) DeleteService(ctx context.Context, id uint) error {
	return s.Repo.DeleteService(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, req transport.CreateCategoryRequest) (*models.ServiceCategory, error) {
	if req.NameIt == "" || req.NameCn == "" || req.Slug == "" {
		return nil, ErrValidation
	}

	cat := models.ServiceCategory{
		NameIt:    req.NameIt,
		NameCn:    req.NameCn,
		Slug:      req.Slug,
		SortOrder: req.SortOrder,
	}
	if err := s.Repo.CreateCategory(ctx, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uint) error {
	return s.Repo.DeleteCategory(ctx, id)
}

func (s *CatalogService) ListCarriers(ctx context.Context, activeOnly bool) ([]models.Carrier, error) {
	return s.Repo.ListCarriers(ctx, activeOnly)
}

func (s *CatalogService) CreateCarrier(ctx context.Context, req transport.CreateCarrierRequest) (*models.Carrier, error) {
	if req.Name == "" || req.TrackingURL == "" {
		return nil, ErrValidation
	}

	carrier := models.Carrier{
		Name:        req.Name,
		TrackingURL: req.TrackingURL,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.Repo.CreateCarrier(ctx, &carrier); err != nil {
		return nil, err
	}
	return &carrier, nil
}

func (s *CatalogService) PatchCarrier(ctx context.Context, id uint, req transport.PatchCarrierRequest) (*models.Carrier, error) {
	return s.Repo.PatchCarrier(ctx, id, req)
}

func (s *CatalogService) DeleteCarrier(ctx context.Context, id uint) error {
	return s.Repo.DeleteCarrier(ctx, id)
}
