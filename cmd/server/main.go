package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/ahmedmasry1001/steelsite/internal/config"
	"github.com/ahmedmasry1001/steelsite/internal/database"
	"github.com/ahmedmasry1001/steelsite/internal/handlers"
	"github.com/ahmedmasry1001/steelsite/internal/middleware"
	"github.com/ahmedmasry1001/steelsite/internal/storage"
	"github.com/ahmedmasry1001/steelsite/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := store.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	migrator := database.NewMigrator(db.DB())
	if err := migrator.Run(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		if err := db.EnsureAdmin(cfg.AdminUsername, string(hash)); err != nil {
			log.Fatalf("Failed to create admin account: %v", err)
		}
	} else {
		log.Println("Warning: ADMIN_PASSWORD not set, skipping admin bootstrap")
	}

	files, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	authHandler := handlers.NewAuthHandler(cfg, db)
	projectsHandler := handlers.NewProjectsHandler(db, files, cfg.BaseURL)
	imagesHandler := handlers.NewImagesHandler(db, files, cfg.BaseURL)
	employeesHandler := handlers.NewEmployeesHandler(db)
	contactCardsHandler := handlers.NewContactCardsHandler(db)
	contactsHandler := handlers.NewContactsHandler(db)
	contentHandler := handlers.NewContentHandler(db, files, cfg.BaseURL)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.GET("/health", handlers.HealthHandler)
	router.Static("/uploads", files.Root())

	// Public routes
	router.GET("/api/home-content", contentHandler.HomeContent)
	router.GET("/api/company-info", contentHandler.CompanyInfo)
	router.GET("/api/projects", projectsHandler.ListProjects)
	router.GET("/api/projects/:project_id", projectsHandler.GetProject)
	router.GET("/api/employees", employeesHandler.ListPublic)
	router.GET("/api/contact-cards", contactCardsHandler.ListPublic)
	router.POST("/api/contact", contactsHandler.Submit)
	router.GET("/api/placeholder/:width/:height", handlers.PlaceholderHandler)

	router.POST("/api/admin/login", authHandler.Login)

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg))

	admin.GET("/projects", projectsHandler.ListProjects)
	admin.POST("/projects", projectsHandler.CreateProject)
	admin.PUT("/projects/:project_id", projectsHandler.UpdateProject)
	admin.DELETE("/projects/:project_id", projectsHandler.DeleteProject)

	admin.POST("/projects/:project_id/images", imagesHandler.Upload)
	admin.POST("/projects/:project_id/upload", imagesHandler.Upload)
	admin.GET("/projects/:project_id/images", imagesHandler.ListImages)
	admin.DELETE("/projects/:project_id/images/:image_id", imagesHandler.DeleteImage)
	admin.PUT("/projects/:project_id/images/:image_id/main", imagesHandler.SetMainImage)

	admin.GET("/home-content", contentHandler.HomeContent)
	admin.PUT("/home-content/description", contentHandler.UpdateDescription)
	admin.PUT("/home-content/stats", contentHandler.UpdateStats)
	admin.POST("/home-content/images", contentHandler.UploadHeroImages)
	admin.DELETE("/home-content/images/:image_id", contentHandler.DeleteHeroImage)

	admin.GET("/employees", employeesHandler.ListAdmin)
	admin.POST("/employees", employeesHandler.Create)
	admin.PUT("/employees/:employee_id", employeesHandler.Update)
	admin.DELETE("/employees/:employee_id", employeesHandler.Delete)

	admin.GET("/contact-cards", contactCardsHandler.ListAdmin)
	admin.POST("/contact-cards", contactCardsHandler.Create)
	admin.PUT("/contact-cards/:card_id", contactCardsHandler.Update)
	admin.DELETE("/contact-cards/:card_id", contactCardsHandler.Delete)

	admin.GET("/contacts", contactsHandler.List)

	admin.GET("/company-settings", contentHandler.GetCompanySettings)
	admin.PUT("/company-settings", contentHandler.UpdateCompanySettings)
	admin.GET("/dashboard-settings", contentHandler.GetDashboardSettings)
	admin.PUT("/dashboard-settings", contentHandler.UpdateDashboardSettings)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
