package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/services"
)

const taskRequiredMessage = "Task is required and must be a string"

// TaskHandler serves the current user's task list.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the current user's tasks, newest first
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "User ID not found")
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching todos: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todos fetched successfully",
		"todos":   dto.ToTaskDTOs(tasks),
	})
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "User not found")
		return
	}

	type CreateTaskRequest struct {
		Task string `json:"task" binding:"required"`
	}

	// A non-string task fails to unmarshal, so binding covers the type check.
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, taskRequiredMessage)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		UserID:  userID,
		Content: req.Task,
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskRequired) {
			apierrors.BadRequest(c, taskRequiredMessage)
			return
		}
		if errors.Is(err, services.ErrOwnerNotFound) {
			apierrors.Unauthorized(c, "User not found")
			return
		}
		log.Printf("Error creating todo: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo added successfully",
		"todo":    dto.ToTaskDTO(*task),
	})
}
