package handler

import (
	"book-office/internal/app/middleware"
	"book-office/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *Handler) RegisterAPIRoutes(router gin.IRouter, authMiddleware *middleware.AuthMiddleware, loginLimiter *middleware.IPRateLimiter) {
	authenticated := authMiddleware.WithAuthCheck(role.Customer, role.Staff)
	staffOnly := authMiddleware.WithAuthCheck(role.Staff)

	// ============ Услуги ============
	services := router.Group("/book_production_service")
	{
		// Публичные эндпоинты (пользователь определяется, если есть сессия)
		services.GET("", authMiddleware.WithOptionalAuth(), h.GetServices)
		services.GET("/:id", h.GetService)

		// Для авторизованных пользователей (добавление в черновик)
		services.POST("/:id/add", authenticated, h.AddServiceToProject)

		// Только для сотрудников
		services.POST("", staffOnly, h.CreateService)
		services.PUT("/:id", staffOnly, h.UpdateService)
		services.DELETE("/:id", staffOnly, h.DeleteService)
		services.POST("/:id/add_image", staffOnly, h.UploadServiceImage)
	}

	// ============ Проекты ============
	projects := router.Group("/book_publishing_project")
	projects.Use(authenticated)
	{
		projects.GET("", h.GetProjects)
		projects.GET("/:id", h.GetProject)
		projects.PUT("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)
		projects.PUT("/:id/form", h.FormProject)

		// Только для сотрудников
		projects.PUT("/:id/resolve", staffOnly, h.ResolveProject)
	}

	// М-М связь (проект-услуга)
	selected := router.Group("/selected_services")
	selected.Use(authenticated)
	{
		selected.PUT("/:id", h.UpdateSelectedService)
		selected.DELETE("/:id", h.DeleteSelectedService)
	}

	// ============ Пользователи ============
	users := router.Group("/users")
	{
		users.POST("/sign_up", h.AuthHandler.SignUp)
		users.POST("/log_in", loginLimiter.Limit(), h.AuthHandler.LogIn)

		users.POST("/log_out", authenticated, h.AuthHandler.LogOut)
		users.GET("/me", authenticated, h.AuthHandler.Me)
		users.PUT("/update", authenticated, h.AuthHandler.UpdateProfile)
	}

	router.GET("/ping", h.Ping)
}
