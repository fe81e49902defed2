package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/yukikurage/todo-api/internal/models"
)

var (
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("repository: unique constraint violated")
	// ErrInvalidReference is returned when a write points at a row that does not exist.
	ErrInvalidReference = errors.New("repository: referenced record does not exist")
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("repository: record not found")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user. Returns ErrConflict if the username is taken.
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task. Returns ErrInvalidReference if the owner does not exist.
	Create(ctx context.Context, task *models.Task) error

	// ListByUser returns all tasks owned by userID, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Task, error)
}
