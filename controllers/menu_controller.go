package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pos/pkg/resp"
	"pos/services"
	"pos/ws"
)

type MenuController struct {
	Service *services.CatalogService
	Hub     *ws.EventHub
}

func NewMenuController(service *services.CatalogService, hub *ws.EventHub) *MenuController {
	return &MenuController{Service: service, Hub: hub}
}

// GET /api/menu/items?category=
func (ctl *MenuController) List(c *gin.Context) {
	items, err := ctl.Service.ListItems(c.Query("category"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/menu/stats
func (ctl *MenuController) Stats(c *gin.Context) {
	categories, err := ctl.Service.CategoryStats()
	if err != nil {
		resp.Error(c, err)
		return
	}
	departments, err := ctl.Service.DepartmentStats()
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories, "departments": departments})
}

// POST /api/menu/items
func (ctl *MenuController) Create(c *gin.Context) {
	var draft services.ItemDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := ctl.Service.AddItem(draft)
	if err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventMenuChanged)
	c.JSON(http.StatusCreated, item)
}

// PUT /api/menu/items/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var draft services.ItemDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := ctl.Service.UpdateItem(uint(id), draft)
	if err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventMenuChanged)
	c.JSON(http.StatusOK, item)
}

// DELETE /api/menu/items/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.RemoveItem(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventMenuChanged)
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}
