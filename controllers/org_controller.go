package controllers

import (
	"net/http"

	"clinic-inventory-service/models"
	"clinic-inventory-service/services"

	"github.com/gin-gonic/gin"
)

// OrgController handles HTTP requests for the organizational directory.
type OrgController struct {
	service *services.OrgService
}

// NewOrgController creates a new OrgController.
func NewOrgController(service *services.OrgService) *OrgController {
	return &OrgController{service: service}
}

// Roles returns all role names.
// GET /roles
func (oc *OrgController) Roles(c *gin.Context) {
	roles, err := oc.service.Roles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list roles"})
		return
	}
	c.JSON(http.StatusOK, roles)
}

// AddRole adds a role name.
// POST /roles
func (oc *OrgController) AddRole(c *gin.Context) {
	var req models.AddNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	roles, err := oc.service.AddRole(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add role"})
		return
	}
	c.JSON(http.StatusCreated, roles)
}

// Departments returns all department names.
// GET /departments
func (oc *OrgController) Departments(c *gin.Context) {
	departments, err := oc.service.Departments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list departments"})
		return
	}
	c.JSON(http.StatusOK, departments)
}

// AddDepartment adds a department name.
// POST /departments
func (oc *OrgController) AddDepartment(c *gin.Context) {
	var req models.AddNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	departments, err := oc.service.AddDepartment(c.Request.Context(), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add department"})
		return
	}
	c.JSON(http.StatusCreated, departments)
}

// Staff returns the staff directory.
// GET /staff
func (oc *OrgController) Staff(c *gin.Context) {
	staff, err := oc.service.Staff(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list staff"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

// Admins returns the admin directory.
// GET /admins
func (oc *OrgController) Admins(c *gin.Context) {
	admins, err := oc.service.Admins(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list admins"})
		return
	}
	c.JSON(http.StatusOK, admins)
}
