package api

import (
	"github.com/Boikano11/exercise-tracker/internal"
	"github.com/Boikano11/exercise-tracker/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Users() storage.UserRepository
	Exercises() storage.ExerciseRepository
}

type app struct {
	logger internal.Logger
	store  storage.Store
}

func NewApp(logger internal.Logger, store storage.Store) App {
	return &app{logger: logger, store: store}
}

func (a *app) Logger() internal.Logger               { return a.logger }
func (a *app) Users() storage.UserRepository         { return a.store }
func (a *app) Exercises() storage.ExerciseRepository { return a.store }
