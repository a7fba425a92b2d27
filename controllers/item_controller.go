package controllers

import (
	"errors"
	"net/http"

	"clinic-inventory-service/models"
	"clinic-inventory-service/services"

	"github.com/gin-gonic/gin"
)

// ItemController handles HTTP requests for the item catalog.
type ItemController struct {
	service *services.ItemService
}

// NewItemController creates a new ItemController.
func NewItemController(service *services.ItemService) *ItemController {
	return &ItemController{service: service}
}

// List returns items, optionally filtered by department.
// GET /items?department=
func (ic *ItemController) List(c *gin.Context) {
	items, err := ic.service.List(c.Request.Context(), c.Query("department"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get returns an item by id.
// GET /items/:id
func (ic *ItemController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	item, err := ic.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create registers a new item.
// POST /items
func (ic *ItemController) Create(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, err := ic.service.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update partially updates an item.
// PUT /items/:id
func (ic *ItemController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, err := ic.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete removes an item.
// DELETE /items/:id
func (ic *ItemController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := ic.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Use records consumption of an item by a staff member.
// POST /items/use
func (ic *ItemController) Use(c *gin.Context) {
	var req models.UseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, err := ic.service.Use(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in your department"})
		case errors.Is(err, services.ErrStaffNotFound), errors.Is(err, services.ErrNoDepartment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record usage"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
