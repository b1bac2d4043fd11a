package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pos/entity"
	"pos/pkg/resp"
	"pos/repository"
	"pos/ws"
)

type TableController struct {
	Repo *repository.TableRepository
	Hub  *ws.EventHub
}

func NewTableController(repo *repository.TableRepository, hub *ws.EventHub) *TableController {
	return &TableController{Repo: repo, Hub: hub}
}

// GET /api/tables
func (ctl *TableController) List(c *gin.Context) {
	tables, err := ctl.Repo.FindAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

// POST /api/tables
func (ctl *TableController) Create(c *gin.Context) {
	var req entity.Table
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = entity.TableAvailable
	}

	if err := ctl.Repo.Create(&req); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventTablesChanged)
	c.JSON(http.StatusCreated, req)
}

// PUT /api/tables/:id
func (ctl *TableController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	table, err := ctl.Repo.FindByID(uint(id))
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
		return
	}
	if err != nil {
		resp.Error(c, err)
		return
	}

	// Partial update: absent fields keep their current value.
	var req struct {
		Name     *string `json:"name"`
		Seats    *int    `json:"seats"`
		Category *string `json:"category"`
		Status   *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name != nil {
		table.Name = *req.Name
	}
	if req.Seats != nil {
		table.Seats = *req.Seats
	}
	if req.Category != nil {
		table.Category = *req.Category
	}
	if req.Status != nil {
		table.Status = *req.Status
	}

	if err := ctl.Repo.Update(table); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventTablesChanged)
	c.JSON(http.StatusOK, table)
}

// DELETE /api/tables/:id
func (ctl *TableController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	err := ctl.Repo.Delete(uint(id))
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
		return
	}
	if err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventTablesChanged)
	c.JSON(http.StatusOK, gin.H{"message": "table deleted"})
}
