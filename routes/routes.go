package routes

import (
	"net/http"

	"clinic-inventory-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all service routes.
func RegisterRoutes(r *gin.Engine, res *controllers.ReservationController, items *controllers.ItemController, org *controllers.OrgController) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	reservations := r.Group("/reservations")
	{
		reservations.GET("", res.List)
		reservations.GET("/:id", res.Get)
		reservations.POST("", res.Create)
		reservations.POST("/:id/fulfill", res.Fulfill)
		reservations.DELETE("/:id", res.Delete)
	}

	itemGroup := r.Group("/items")
	{
		itemGroup.GET("", items.List)
		itemGroup.POST("", items.Create)
		itemGroup.POST("/use", items.Use)
		itemGroup.GET("/:id", items.Get)
		itemGroup.PUT("/:id", items.Update)
		itemGroup.DELETE("/:id", items.Delete)
	}

	r.GET("/roles", org.Roles)
	r.POST("/roles", org.AddRole)
	r.GET("/departments", org.Departments)
	r.POST("/departments", org.AddDepartment)
	r.GET("/staff", org.Staff)
	r.GET("/admins", org.Admins)
}
