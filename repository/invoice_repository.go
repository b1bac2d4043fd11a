package repository

import (
	"gorm.io/gorm"

	"pos/entity"
)

type InvoiceRepository struct {
	DB *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

func (r *InvoiceRepository) FindAll() ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.DB.Order("id asc").Find(&invoices).Error
	return invoices, err
}

func (r *InvoiceRepository) Create(inv *entity.Invoice) error {
	return r.DB.Create(inv).Error
}
