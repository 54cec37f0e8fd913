package storage

import (
	"context"
	"time"

	"github.com/Boikano11/exercise-tracker/internal"
)

type UserRepository interface {
	// CreateUser persists the record, assigning its ID.
	CreateUser(ctx context.Context, user *internal.User) error
	// ListUsers returns every user in storage-native order.
	ListUsers(ctx context.Context) ([]internal.User, error)
	// GetUser returns internal.ErrNotFound when no user has the given id.
	GetUser(ctx context.Context, id string) (*internal.User, error)
}

type ExerciseRepository interface {
	// SaveExercise persists the record, assigning its ID.
	SaveExercise(ctx context.Context, exercise *internal.Exercise) error
	// FindExercises returns matching records in storage-native order.
	FindExercises(ctx context.Context, filter ExerciseFilter) ([]internal.Exercise, error)
}

// ExerciseFilter matches exercises by user and optional inclusive date
// bounds. Limit <= 0 means no cap.
type ExerciseFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// Store is the full storage gateway with an explicit shutdown.
type Store interface {
	UserRepository
	ExerciseRepository
	Close(ctx context.Context) error
}
