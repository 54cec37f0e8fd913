package storage

import (
	"context"
	"fmt"

	"github.com/Boikano11/exercise-tracker/internal"
	"github.com/Boikano11/exercise-tracker/internal/config"
)

// NewStore builds the backend selected by the config.
func NewStore(ctx context.Context, cfg *config.Config, logger internal.Logger) (Store, error) {
	switch cfg.Backend {
	case "mongo":
		return NewMongoStore(ctx, cfg.MongoURI, logger)
	case "postgres":
		return NewPostgresStore(ctx, cfg.PostgresDSN, logger)
	case "file":
		return NewFileStore(cfg.UsersFile, cfg.ExercisesFile, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
