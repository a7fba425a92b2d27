package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-inventory-service/models"
	"clinic-inventory-service/services"

	"github.com/gin-gonic/gin"
)

// ReservationController handles HTTP requests for reservations.
type ReservationController struct {
	service *services.ReservationService
}

// NewReservationController creates a new ReservationController.
func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// List returns reservations, optionally filtered.
// GET /reservations?status=&department=
func (rc *ReservationController) List(c *gin.Context) {
	status := c.Query("status")
	department := c.Query("department")

	out, err := rc.service.List(c.Request.Context(), status, department)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get returns a reservation by id.
// GET /reservations/:id
func (rc *ReservationController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := rc.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservation"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Create creates a reservation for an item.
// POST /reservations
func (rc *ReservationController) Create(c *gin.Context) {
	var req models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	res, err := rc.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Fulfill marks a pending reservation fulfilled.
// POST /reservations/:id/fulfill
func (rc *ReservationController) Fulfill(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := rc.service.Fulfill(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, services.ErrReservationNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "Reservation not pending"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fulfill reservation"})
		}
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete cancels a reservation.
// DELETE /reservations/:id
func (rc *ReservationController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	removed, err := rc.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist deletion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "removed": removed})
}

// idParam parses the :id path parameter, writing a 400 on failure.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
