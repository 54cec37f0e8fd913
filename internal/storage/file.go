package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Boikano11/exercise-tracker/internal"
)

// FileStore keeps everything in memory and persists to JSON files through
// debounced background workers. The per-user exercise index preserves
// insertion order, which is the storage-native order the log contract
// exposes.
type FileStore struct {
	users             map[string]*internal.User     // id -> User
	userOrder         []string                      // ids in creation order
	exercises         map[string]*internal.Exercise // id -> Exercise
	userExerciseIndex map[string][]*internal.Exercise
	mu                sync.RWMutex
	usersFile         string
	exercisesFile     string
	saveUsersChan     chan struct{}
	saveExercisesChan chan struct{}
	shutdownChan      chan struct{}
	saveDelay         time.Duration
	logger            internal.Logger
}

func NewFileStore(usersFile, exercisesFile string, logger internal.Logger) (*FileStore, error) {
	s := &FileStore{
		users:             make(map[string]*internal.User),
		exercises:         make(map[string]*internal.Exercise),
		userExerciseIndex: make(map[string][]*internal.Exercise),
		usersFile:         usersFile,
		exercisesFile:     exercisesFile,
		saveUsersChan:     make(chan struct{}, 1),
		saveExercisesChan: make(chan struct{}, 1),
		shutdownChan:      make(chan struct{}),
		saveDelay:         500 * time.Millisecond,
		logger:            logger,
	}

	if err := s.loadUsers(); err != nil {
		logger.Errorf("storage: failed to load users: %v", err)
		return nil, err
	}
	if err := s.loadExercises(); err != nil {
		logger.Errorf("storage: failed to load exercises: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveUsersChan, s.saveUsers, "users")
	go s.saveWorker(s.saveExercisesChan, s.saveExercises, "exercises")

	return s, nil
}

func (s *FileStore) loadUsers() error {
	file, err := os.Open(s.usersFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var users []*internal.User
	if err := json.NewDecoder(file).Decode(&users); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.ID] = u
		s.userOrder = append(s.userOrder, u.ID)
	}
	return nil
}

func (s *FileStore) loadExercises() error {
	file, err := os.Open(s.exercisesFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var exercises []*internal.Exercise
	if err := json.NewDecoder(file).Decode(&exercises); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range exercises {
		s.exercises[e.ID] = e
		s.userExerciseIndex[e.UserID] = append(s.userExerciseIndex[e.UserID], e)
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStore) saveUsers() error {
	s.mu.RLock()
	users := make([]*internal.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, s.users[id])
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.usersFile, users)
}

func (s *FileStore) saveExercises() error {
	s.mu.RLock()
	exercises := make([]*internal.Exercise, 0, len(s.exercises))
	for _, byUser := range s.userExerciseIndex {
		exercises = append(exercises, byUser...)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.exercisesFile, exercises)
}

// saveWorker batches save requests to avoid a disk write per mutation.
func (s *FileStore) saveWorker(signal chan struct{}, save func() error, what string) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-signal:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: error saving %s: %v", what, err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

// --- UserRepository ---

func (s *FileStore) CreateUser(ctx context.Context, user *internal.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	s.mu.Unlock()

	select {
	case s.saveUsersChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStore) ListUsers(ctx context.Context) ([]internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]internal.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, *s.users[id])
	}
	return users, nil
}

func (s *FileStore) GetUser(ctx context.Context, id string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, internal.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

// --- ExerciseRepository ---

func (s *FileStore) SaveExercise(ctx context.Context, exercise *internal.Exercise) error {
	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}

	s.mu.Lock()
	s.exercises[exercise.ID] = exercise
	s.userExerciseIndex[exercise.UserID] = append(s.userExerciseIndex[exercise.UserID], exercise)
	s.mu.Unlock()

	select {
	case s.saveExercisesChan <- struct{}{}:
	default:
	}
	return nil
}

func (s *FileStore) FindExercises(ctx context.Context, filter ExerciseFilter) ([]internal.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []internal.Exercise{}
	for _, e := range s.userExerciseIndex[filter.UserID] {
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		matched = append(matched, *e)
		if filter.Limit > 0 && len(matched) == filter.Limit {
			break
		}
	}
	return matched, nil
}

// Close stops the save workers and flushes pending data synchronously.
func (s *FileStore) Close(ctx context.Context) error {
	close(s.shutdownChan)

	if err := s.saveUsers(); err != nil {
		return err
	}
	return s.saveExercises()
}

// --- Compile-time assertions ---
var _ Store = (*FileStore)(nil)
