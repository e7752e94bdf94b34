package router

import (
	"time"

	"github.com/Anieto86/LabLink/internal/database/repository"
	"github.com/Anieto86/LabLink/internal/handlers"
	"github.com/Anieto86/LabLink/internal/middleware"
	"github.com/Anieto86/LabLink/internal/services"
	"github.com/Anieto86/LabLink/internal/services/auth"
	"github.com/Anieto86/LabLink/internal/services/events"
	"github.com/Anieto86/LabLink/internal/services/excel"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// SetupRouter configures the Gin router with all API routes
func SetupRouter(db *gorm.DB, publisher *events.Publisher) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	labRepo := repository.NewLaboratoryRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)

	// Services
	var eventPublisher auth.EventPublisher
	if publisher != nil {
		eventPublisher = publisher
	}
	authService := auth.NewAuthService(userRepo, refreshTokenRepo, eventPublisher)
	userService := services.NewUserService(userRepo)
	labService := services.NewLaboratoryService(labRepo, equipmentRepo)
	equipmentService := services.NewEquipmentService(equipmentRepo, labRepo, publisher)
	excelService := excel.NewExcelService()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	labHandler := handlers.NewLaboratoryHandler(labService)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService, excelService)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
			"uptime":    time.Since(startedAt).Seconds(),
		})
	})

	// Auth routes (public)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh", authHandler.Refresh)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.RequireAuth(authService))
	{
		users := protected.Group("/users")
		{
			users.GET("/me", userHandler.GetMe)
			users.GET("", userHandler.ListUsers)
			users.PUT("/:id/status", userHandler.SetUserStatus)
		}

		labs := protected.Group("/laboratories")
		{
			labs.POST("", labHandler.CreateLaboratory)
			labs.GET("", labHandler.ListLaboratories)
			labs.GET("/:id", labHandler.GetLaboratory)
			labs.GET("/:id/equipment", labHandler.GetLaboratoryEquipment)
		}

		equipment := protected.Group("/equipment")
		{
			equipment.POST("", equipmentHandler.CreateEquipment)
			equipment.GET("", equipmentHandler.ListEquipment)
			equipment.GET("/export", equipmentHandler.ExportEquipment)
			equipment.GET("/:id", equipmentHandler.GetEquipment)
			equipment.PUT("/:id", equipmentHandler.UpdateEquipment)
			equipment.DELETE("/:id", equipmentHandler.DeleteEquipment)
		}
	}

	return r
}
