package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pos/pkg/resp"
	"pos/repository"
	"pos/ws"
)

type ConfigController struct {
	Repo *repository.ConfigRepository
	Hub  *ws.EventHub
}

func NewConfigController(repo *repository.ConfigRepository, hub *ws.EventHub) *ConfigController {
	return &ConfigController{Repo: repo, Hub: hub}
}

// GET /api/config/kot
func (ctl *ConfigController) GetKot(c *gin.Context) {
	cfg, err := ctl.Repo.GetKot()
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// PUT /api/config/kot
func (ctl *ConfigController) UpdateKot(c *gin.Context) {
	cfg, err := ctl.Repo.GetKot()
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req struct {
		PrintByDepartment *bool `json:"printByDepartment"`
		NumberOfCopies    *int  `json:"numberOfCopies"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PrintByDepartment != nil {
		cfg.PrintByDepartment = *req.PrintByDepartment
	}
	if req.NumberOfCopies != nil {
		cfg.NumberOfCopies = *req.NumberOfCopies
	}

	if err := ctl.Repo.SaveKot(cfg); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventConfigChanged)
	c.JSON(http.StatusOK, cfg)
}

// GET /api/config/bill
func (ctl *ConfigController) GetBill(c *gin.Context) {
	cfg, err := ctl.Repo.GetBill()
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// PUT /api/config/bill
func (ctl *ConfigController) UpdateBill(c *gin.Context) {
	cfg, err := ctl.Repo.GetBill()
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req struct {
		AutoPrintDineIn   *bool `json:"autoPrintDineIn"`
		AutoPrintTakeaway *bool `json:"autoPrintTakeaway"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AutoPrintDineIn != nil {
		cfg.AutoPrintDineIn = *req.AutoPrintDineIn
	}
	if req.AutoPrintTakeaway != nil {
		cfg.AutoPrintTakeaway = *req.AutoPrintTakeaway
	}

	if err := ctl.Repo.SaveBill(cfg); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventConfigChanged)
	c.JSON(http.StatusOK, cfg)
}
