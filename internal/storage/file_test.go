package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Boikano11/exercise-tracker/internal"
)

func newFileStore(t *testing.T, dir string) *FileStore {
	t.Helper()
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	store, err := NewFileStore(filepath.Join(dir, "users.json"), filepath.Join(dir, "exercises.json"), logger)
	require.NoError(t, err)
	return store
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestFileStore_CreateAndGetUser(t *testing.T) {
	store := newFileStore(t, t.TempDir())
	ctx := context.Background()

	user := &internal.User{Username: "fcc_test"}
	require.NoError(t, store.CreateUser(ctx, user))
	assert.NotEmpty(t, user.ID)

	got, err := store.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "fcc_test", got.Username)

	_, err = store.GetUser(ctx, "missing")
	assert.True(t, errors.Is(err, internal.ErrNotFound))
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store := newFileStore(t, dir)
	user := &internal.User{Username: "fcc_test"}
	require.NoError(t, store.CreateUser(ctx, user))
	require.NoError(t, store.SaveExercise(ctx, &internal.Exercise{
		UserID:      user.ID,
		Description: "test run",
		Duration:    30,
		Date:        mustDay(t, "2023-01-01"),
	}))
	require.NoError(t, store.Close(ctx))

	reopened := newFileStore(t, dir)
	got, err := reopened.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "fcc_test", got.Username)

	exercises, err := reopened.FindExercises(ctx, ExerciseFilter{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "test run", exercises[0].Description)
}

func TestFileStore_FindExercisesFilter(t *testing.T) {
	store := newFileStore(t, t.TempDir())
	ctx := context.Background()

	for _, d := range []string{"2023-01-01", "2023-01-05", "2023-01-10"} {
		require.NoError(t, store.SaveExercise(ctx, &internal.Exercise{
			UserID: "u1", Description: "run", Duration: 5, Date: mustDay(t, d),
		}))
	}

	from := mustDay(t, "2023-01-01")
	to := mustDay(t, "2023-01-05")
	got, err := store.FindExercises(ctx, ExerciseFilter{UserID: "u1", From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = store.FindExercises(ctx, ExerciseFilter{UserID: "u1", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = store.FindExercises(ctx, ExerciseFilter{UserID: "other"})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFileStore_InsertionOrderPreserved(t *testing.T) {
	store := newFileStore(t, t.TempDir())
	ctx := context.Background()

	for _, d := range []string{"2023-03-01", "2023-01-01", "2023-02-01"} {
		require.NoError(t, store.SaveExercise(ctx, &internal.Exercise{
			UserID: "u1", Description: d, Duration: 5, Date: mustDay(t, d),
		}))
	}

	got, err := store.FindExercises(ctx, ExerciseFilter{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2023-03-01", got[0].Description)
	assert.Equal(t, "2023-01-01", got[1].Description)
	assert.Equal(t, "2023-02-01", got[2].Description)
}
