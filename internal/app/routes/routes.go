package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/habtamu/memberdesk/internal/app/controllers"
	"github.com/habtamu/memberdesk/internal/middleware"
)

// SetupRouter configures all console routes
func SetupRouter(
	router *gin.Engine,
	landingController *controllers.LandingController,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	usersController *controllers.UsersController,
	adminsController *controllers.AdminsController,
	guard *middleware.Guard,
) {
	// --- Public routes ---
	router.GET("/", landingController.Landing)
	router.GET("/admin/login", authController.ShowLogin)
	router.POST("/admin/login", authController.Login)
	router.GET("/logout", authController.Logout)

	// --- Protected administrative area ---
	// Every entry re-resolves the session against the API.
	admin := router.Group("/admin")
	admin.Use(guard.RequireAuth())
	{
		admin.GET("", dashboardController.Dashboard)

		users := admin.Group("/users")
		{
			users.GET("", usersController.Index)
			users.POST("", usersController.Create)
			users.POST("/delete-all", usersController.DeleteAll)
			users.POST("/:id", usersController.Update)
			users.POST("/:id/delete", usersController.Delete)
		}

		// Admin management is super-admin only.
		admins := admin.Group("/admins")
		admins.Use(guard.RequireSuperAdmin())
		{
			admins.GET("", adminsController.Index)
			admins.POST("", adminsController.Create)
			admins.POST("/:id", adminsController.Update)
			admins.POST("/:id/delete", adminsController.Delete)
		}
	}
}
