package repo

import (
	"gorm.io/gorm"

	"github.com/lunaweb/repair_shop/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func (r *GormRepo) AutoMigrate() error {
	return r.DB.AutoMigrate(
		&models.User{},
		&models.Setting{},
		&models.Appointment{},
		&models.ContactMessage{},
		&models.Service{},
		&models.ServiceCategory{},
		&models.Carrier{},
		&models.BusinessHour{},
		&models.Holiday{},
	)
}
