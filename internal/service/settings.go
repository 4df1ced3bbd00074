package service

import (
	"context"

	"github.com/lunaweb/repair_shop/internal/repo"
)

type SettingsService struct {
	Repo *repo.GormRepo
}

func (s *SettingsService) All(ctx context.Context) (map[string]string, error) {
	return s.Repo.GetSettings(ctx)
}

func (s *SettingsService) Update(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrValidation
	}
	return s.Repo.UpsertSetting(ctx, key, value)
}

func (s *SettingsService) BatchUpdate(ctx context.Context, settings map[string]string) error {
	if len(settings) == 0 {
		return ErrValidation
	}
	return s.Repo.UpsertSettings(ctx, settings)
}
