package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Boikano11/exercise-tracker/internal"
	"github.com/Boikano11/exercise-tracker/internal/storage"
)

const dayFormat = "2006-01-02"

type ExerciseRequest struct {
	Description string `form:"description" json:"description" validate:"required"`
	Duration    string `form:"duration" json:"duration" validate:"required"`
	Date        string `form:"date" json:"date"`
}

// ExerciseResult is the composite view returned after logging an exercise:
// the owning user's identity plus the stored exercise fields.
type ExerciseResult struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

func LogExercise(ctx context.Context, users storage.UserRepository, exercises storage.ExerciseRepository, userID string, req *ExerciseRequest) (*ExerciseResult, error) {
	if err := validate.Struct(req); err != nil {
		return nil, internal.ValidationError("Description and duration are required.")
	}

	duration, err := strconv.Atoi(req.Duration)
	if err != nil {
		return nil, internal.ValidationError(`Invalid "duration" value. Please use an integer.`)
	}

	date := today()
	if req.Date != "" {
		date, err = time.Parse(dayFormat, req.Date)
		if err != nil {
			return nil, internal.ValidationError(`Invalid "date" format. Please use yyyy-mm-dd.`)
		}
	}

	user, err := users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, internal.ErrNotFound) {
			return nil, internal.NotFoundError("User not found.")
		}
		return nil, internal.StorageError("An error occurred while adding the exercise.", err)
	}

	exercise := &internal.Exercise{
		UserID:      user.ID,
		Description: req.Description,
		Duration:    duration,
		Date:        date,
	}
	if err := exercises.SaveExercise(ctx, exercise); err != nil {
		return nil, internal.StorageError("Failed to save exercise", err)
	}

	return &ExerciseResult{
		ID:          user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.Format(dayFormat),
	}, nil
}

// today is the current calendar day at midnight UTC, matching how supplied
// dates are stored. Inclusive range filters compare whole days this way.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
