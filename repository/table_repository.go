package repository

import (
	"gorm.io/gorm"

	"pos/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) FindAll() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("id asc").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var table entity.Table
	if err := r.DB.First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *TableRepository) Create(table *entity.Table) error {
	return r.DB.Create(table).Error
}

func (r *TableRepository) Update(table *entity.Table) error {
	return r.DB.Save(table).Error
}

func (r *TableRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Table{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *TableRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Table{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
