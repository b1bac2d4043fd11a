package repository

import (
	"gorm.io/gorm"

	"pos/entity"
)

// ConfigRepository serves the two singleton config rows, creating
// defaults on first read the way the POS always has.
type ConfigRepository struct {
	DB *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{DB: db}
}

func (r *ConfigRepository) GetKot() (*entity.KotConfig, error) {
	var cfg entity.KotConfig
	err := r.DB.First(&cfg).Error
	if err == gorm.ErrRecordNotFound {
		cfg = entity.KotConfig{PrintByDepartment: false, NumberOfCopies: 1}
		err = r.DB.Create(&cfg).Error
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *ConfigRepository) SaveKot(cfg *entity.KotConfig) error {
	return r.DB.Save(cfg).Error
}

func (r *ConfigRepository) GetBill() (*entity.BillConfig, error) {
	var cfg entity.BillConfig
	err := r.DB.First(&cfg).Error
	if err == gorm.ErrRecordNotFound {
		cfg = entity.BillConfig{}
		err = r.DB.Create(&cfg).Error
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *ConfigRepository) SaveBill(cfg *entity.BillConfig) error {
	return r.DB.Save(cfg).Error
}
