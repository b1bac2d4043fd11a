package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pos/pkg/resp"
	"pos/services"
	"pos/ws"
)

type CategoryController struct {
	Service *services.CatalogService
	Hub     *ws.EventHub
}

func NewCategoryController(service *services.CatalogService, hub *ws.EventHub) *CategoryController {
	return &CategoryController{Service: service, Hub: hub}
}

// GET /api/menu/categories
func (ctl *CategoryController) List(c *gin.Context) {
	cats, err := ctl.Service.ListCategories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// POST /api/menu/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := ctl.Service.AddCategory(req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventMenuChanged)
	c.JSON(http.StatusCreated, cat)
}

// DELETE /api/menu/categories/:id?force=true
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	force := c.Query("force") == "true"

	if err := ctl.Service.RemoveCategory(uint(id), force); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Hub.Publish(ws.EventMenuChanged)
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
