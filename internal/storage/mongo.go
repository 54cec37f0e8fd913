package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Boikano11/exercise-tracker/internal"
)

const mongoDatabase = "exercise_tracker"

type MongoStore struct {
	client    *mongo.Client
	users     *mongo.Collection
	exercises *mongo.Collection
	logger    internal.Logger
}

func NewMongoStore(ctx context.Context, uri string, logger internal.Logger) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Errorf("failed to connect to mongodb: %v", err)
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Errorf("failed to ping mongodb: %v", err)
		return nil, err
	}
	db := client.Database(mongoDatabase)
	return &MongoStore{
		client:    client,
		users:     db.Collection("users"),
		exercises: db.Collection("exercises"),
		logger:    logger,
	}, nil
}

// --- UserRepository ---

func (m *MongoStore) CreateUser(ctx context.Context, user *internal.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if _, err := m.users.InsertOne(ctx, user); err != nil {
		m.logger.Errorf("failed to insert user: %v", err)
		return err
	}
	return nil
}

func (m *MongoStore) ListUsers(ctx context.Context) ([]internal.User, error) {
	cur, err := m.users.Find(ctx, bson.M{})
	if err != nil {
		m.logger.Errorf("failed to query users: %v", err)
		return nil, err
	}
	users := []internal.User{}
	if err := cur.All(ctx, &users); err != nil {
		m.logger.Errorf("failed to decode users: %v", err)
		return nil, err
	}
	return users, nil
}

func (m *MongoStore) GetUser(ctx context.Context, id string) (*internal.User, error) {
	var u internal.User
	err := m.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, internal.ErrNotFound
	}
	if err != nil {
		m.logger.Errorf("failed to fetch user %s: %v", id, err)
		return nil, err
	}
	return &u, nil
}

// --- ExerciseRepository ---

func (m *MongoStore) SaveExercise(ctx context.Context, exercise *internal.Exercise) error {
	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	if _, err := m.exercises.InsertOne(ctx, exercise); err != nil {
		m.logger.Errorf("failed to insert exercise: %v", err)
		return err
	}
	return nil
}

func (m *MongoStore) FindExercises(ctx context.Context, filter ExerciseFilter) ([]internal.Exercise, error) {
	query := bson.M{"userId": filter.UserID}
	date := bson.M{}
	if filter.From != nil {
		date["$gte"] = *filter.From
	}
	if filter.To != nil {
		date["$lte"] = *filter.To
	}
	if len(date) > 0 {
		query["date"] = date
	}

	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cur, err := m.exercises.Find(ctx, query, opts)
	if err != nil {
		m.logger.Errorf("failed to query exercises: %v", err)
		return nil, err
	}
	exercises := []internal.Exercise{}
	if err := cur.All(ctx, &exercises); err != nil {
		m.logger.Errorf("failed to decode exercises: %v", err)
		return nil, err
	}
	return exercises, nil
}

func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// --- Compile-time assertions ---
var _ Store = (*MongoStore)(nil)
