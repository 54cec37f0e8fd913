package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/Boikano11/exercise-tracker/internal"
	"github.com/Boikano11/exercise-tracker/internal/storage"
)

var validate = validator.New()

type CreateUserRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
}

func CreateUser(ctx context.Context, users storage.UserRepository, req *CreateUserRequest) (*internal.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, internal.ValidationError("Username is required.")
	}

	user := &internal.User{Username: req.Username}
	if err := users.CreateUser(ctx, user); err != nil {
		return nil, internal.StorageError("Failed to create user", err)
	}
	return user, nil
}

func ListUsers(ctx context.Context, users storage.UserRepository) ([]internal.User, error) {
	all, err := users.ListUsers(ctx)
	if err != nil {
		return nil, internal.StorageError("Failed to fetch users", err)
	}
	return all, nil
}
