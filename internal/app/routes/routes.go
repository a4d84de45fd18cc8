package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yigit/studentinfo/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
) {
	// Student record routes
	students := router.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.POST("", studentController.CreateStudent)
	}

	// Liveness endpoint (public)
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Student Info Backend Running")
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger routes are registered separately via SetupSwagger
}
