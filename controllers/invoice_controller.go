package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pos/entity"
	"pos/pkg/resp"
	"pos/repository"
)

type InvoiceController struct {
	Repo *repository.InvoiceRepository
}

func NewInvoiceController(repo *repository.InvoiceRepository) *InvoiceController {
	return &InvoiceController{Repo: repo}
}

// GET /api/invoices
func (ctl *InvoiceController) List(c *gin.Context) {
	invoices, err := ctl.Repo.FindAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// POST /api/invoices
func (ctl *InvoiceController) Create(c *gin.Context) {
	var req entity.Invoice
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now()
	}

	if err := ctl.Repo.Create(&req); err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}
