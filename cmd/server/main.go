package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"jobportal/internal/api"
	"jobportal/internal/config"
	"jobportal/internal/handlers"
	"jobportal/internal/middleware"
	"jobportal/internal/models"
	"jobportal/internal/services"
)

func main() {
	// 1. Load Configuration (env + .env)
	cfg := config.Load()

	// 2. Backend API Client
	client := api.New(cfg.BackendAPIURL, cfg.BackendTimeout)

	// 3. Initialize Core Services (Dependencies)
	jobService := services.NewJobRoleService(client)
	applicationService := services.NewApplicationService(client)
	authService := services.NewAuthService(client)

	// 4. Initialize Handlers
	jobHandler := handlers.NewJobRoleHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(jobService, applicationService)
	authHandler := handlers.NewAuthHandler(authService)

	// 5. Setup Router, Sessions & CORS
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((8 * time.Hour).Seconds()),
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("jobportal", store))

	r.LoadHTMLGlob("templates/*.html")
	r.MaxMultipartMemory = 8 << 20

	// 6. Define Routes
	r.GET("/health", handlers.HealthCheck)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(302, "/job-roles")
	})
	r.GET("/job-roles", jobHandler.List)
	r.GET("/job-roles/:id", jobHandler.Detail)

	r.GET("/login", authHandler.LoginForm)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.RegisterForm)
	r.POST("/register", authHandler.Register)
	r.POST("/logout", authHandler.Logout)

	// Applying requires a logged-in user of either role
	apply := r.Group("/job-roles/:id/apply", middleware.RequireAuth())
	{
		apply.GET("", applicationHandler.Form)
		apply.POST("", applicationHandler.Submit)
	}

	// Posting administration is admin-only
	admin := r.Group("/admin", middleware.RequireAuth(models.RoleAdmin))
	{
		admin.GET("/job-roles/new", jobHandler.NewForm)
		admin.POST("/job-roles", jobHandler.Create)
		admin.GET("/job-roles/:id/edit", jobHandler.EditForm)
		admin.POST("/job-roles/:id/edit", jobHandler.Update)
		admin.POST("/job-roles/:id/delete", jobHandler.Delete)
	}

	log.Printf("🚀 Portal starting on port %s (backend: %s)", cfg.Port, cfg.BackendAPIURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
