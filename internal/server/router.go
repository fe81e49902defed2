package server

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/auth"
	"github.com/yukikurage/todo-api/internal/handlers"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/services"
	"gorm.io/gorm"
)

// Deps are the collaborators the HTTP surface is built from
type Deps struct {
	DB     *gorm.DB
	Hasher services.PasswordHasher
	Tokens *auth.TokenManager
}

// NewRouter wires repositories, services and handlers onto a gin engine.
// Global middleware (logging, recovery) is left to the caller.
func NewRouter(r *gin.Engine, deps Deps) *gin.Engine {
	userRepo := repository.NewUserRepository(deps.DB)
	taskRepo := repository.NewTaskRepository(deps.DB)

	authService := services.NewAuthService(userRepo, deps.Hasher, deps.Tokens)
	taskService := services.NewTaskService(taskRepo)

	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)

	requireAuth := middleware.RequireAuth(deps.Tokens)

	api := r.Group("/api")
	{
		// Public routes
		api.GET("/health", handlers.Health)
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)

		// Protected routes
		api.GET("/me", requireAuth, authHandler.GetCurrentUser)
		api.GET("/mytodos", requireAuth, taskHandler.ListTasks)
		api.POST("/todos", requireAuth, taskHandler.CreateTask)
	}

	return r
}
