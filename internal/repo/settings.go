package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lunaweb/repair_shop/internal/models"
)

const SettingInitialized = "is_initialized"

func upsertSetting(tx *gorm.DB, s models.Setting) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&s).Error
}

func (r *GormRepo) GetSettings(ctx context.Context) (map[string]string, error) {
	var rows []models.Setting
	if err := r.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

func (r *GormRepo) UpsertSetting(ctx context.Context, key, value string) error {
	return upsertSetting(r.DB.WithContext(ctx), models.Setting{Key: key, Value: value})
}

func (r *GormRepo) UpsertSettings(ctx context.Context, settings map[string]string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range settings {
			if err := upsertSetting(tx, models.Setting{Key: key, Value: value}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *GormRepo) IsInitialized(ctx context.Context) (bool, error) {
	var row models.Setting
	err := r.DB.WithContext(ctx).Where("key = ?", SettingInitialized).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return row.Value == "1", nil
}
