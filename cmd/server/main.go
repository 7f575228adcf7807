package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"registro/internal/auth"
	"registro/internal/config"
	"registro/internal/database"
	"registro/internal/handlers"
	"registro/internal/logs"
	"registro/internal/middleware"
	"registro/internal/repository"
	"registro/internal/services"
)

func main() {
	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	logs.Init(logs.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logs.Logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logs.Logger.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// Initialize services
	tokens := auth.NewTokenService(cfg.Auth.Secret, cfg.TokenTTL())
	authService := services.NewAuthService(userRepo)
	employeeService := services.NewEmployeeService(employeeRepo)
	departmentService := services.NewDepartmentService(departmentRepo)
	positionService := services.NewPositionService(positionRepo)
	projectService := services.NewProjectService(projectRepo, employeeRepo)
	importService := services.NewImportService(employeeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokens)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, importService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	positionHandler := handlers.NewPositionHandler(positionService)
	projectHandler := handlers.NewProjectHandler(projectService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Health endpoint
	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"host":   c.ClientIP(),
			"port":   cfg.Server.Port,
		})
	})

	// Root redirects to the employee list
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/employees")
	})

	// Auth routes (public)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/logout", authHandler.Logout)

	// Protected routes
	requireAuth := middleware.RequireAuth(tokens, authService)

	employees := r.Group("/employees")
	employees.Use(requireAuth)
	{
		employees.GET("", employeeHandler.List)
		employees.POST("", employeeHandler.Create)
		employees.GET("/import", employeeHandler.ImportPage)
		employees.POST("/import", employeeHandler.Import)
		employees.GET("/:id", employeeHandler.Get)
		employees.PUT("/:id", employeeHandler.Update)
		employees.DELETE("/:id", employeeHandler.Delete)
	}

	departments := r.Group("/departments")
	departments.Use(requireAuth)
	{
		departments.GET("", departmentHandler.List)
		departments.POST("", departmentHandler.Create)
		departments.DELETE("/:id", departmentHandler.Delete)
	}

	positions := r.Group("/positions")
	positions.Use(requireAuth)
	{
		positions.GET("", positionHandler.List)
		positions.POST("", positionHandler.Create)
		positions.DELETE("/:id", positionHandler.Delete)
	}

	projects := r.Group("/projects")
	projects.Use(requireAuth)
	{
		projects.GET("", projectHandler.List)
		projects.POST("", projectHandler.Create)
		projects.GET("/:id", projectHandler.Get)
		projects.POST("/:id/add_employee", projectHandler.AddEmployee)
		projects.POST("/:id/remove_employee/:employee_id", projectHandler.RemoveEmployee)
	}

	// Start server
	logs.Logger.Infof("Server starting on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logs.Logger.Fatalf("Failed to start server: %v", err)
	}
}
