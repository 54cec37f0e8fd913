package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Boikano11/exercise-tracker/internal"
)

type PostgresStore struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStore(ctx context.Context, dsn string, logger internal.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	s := &PostgresStore{pool: pool, logger: logger}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (p *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id       TEXT PRIMARY KEY,
			username TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS exercises (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL,
			description TEXT NOT NULL,
			duration    INTEGER NOT NULL,
			date        TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS exercises_user_id_idx ON exercises (user_id);
	`)
	if err != nil {
		p.logger.Errorf("failed to ensure schema: %v", err)
	}
	return err
}

// --- UserRepository ---

func (p *PostgresStore) CreateUser(ctx context.Context, user *internal.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	_, err := p.pool.Exec(ctx, `INSERT INTO users (id, username) VALUES ($1, $2)`, user.ID, user.Username)
	if err != nil {
		p.logger.Errorf("failed to insert user: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStore) ListUsers(ctx context.Context) ([]internal.User, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, username FROM users`)
	if err != nil {
		p.logger.Errorf("failed to query users: %v", err)
		return nil, err
	}
	defer rows.Close()

	users := []internal.User{}
	for rows.Next() {
		var u internal.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			p.logger.Errorf("failed to scan user: %v", err)
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (p *PostgresStore) GetUser(ctx context.Context, id string) (*internal.User, error) {
	row := p.pool.QueryRow(ctx, `SELECT id, username FROM users WHERE id = $1`, id)
	var u internal.User
	if err := row.Scan(&u.ID, &u.Username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, internal.ErrNotFound
		}
		p.logger.Errorf("failed to fetch user %s: %v", id, err)
		return nil, err
	}
	return &u, nil
}

// --- ExerciseRepository ---

func (p *PostgresStore) SaveExercise(ctx context.Context, exercise *internal.Exercise) error {
	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	_, err := p.pool.Exec(ctx,
		`INSERT INTO exercises (id, user_id, description, duration, date) VALUES ($1, $2, $3, $4, $5)`,
		exercise.ID, exercise.UserID, exercise.Description, exercise.Duration, exercise.Date)
	if err != nil {
		p.logger.Errorf("failed to insert exercise: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStore) FindExercises(ctx context.Context, filter ExerciseFilter) ([]internal.Exercise, error) {
	query := `SELECT id, user_id, description, duration, date FROM exercises WHERE user_id = $1`
	args := []interface{}{filter.UserID}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Errorf("failed to query exercises: %v", err)
		return nil, err
	}
	defer rows.Close()

	exercises := []internal.Exercise{}
	for rows.Next() {
		var e internal.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date); err != nil {
			p.logger.Errorf("failed to scan exercise: %v", err)
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

func (p *PostgresStore) Close(ctx context.Context) error {
	p.pool.Close()
	return nil
}

// --- Compile-time assertions ---
var _ Store = (*PostgresStore)(nil)
