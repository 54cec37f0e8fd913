package config

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	Port          string
	LogLevel      string
	Backend       string
	MongoURI      string
	PostgresDSN   string
	UsersFile     string
	ExercisesFile string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:           getEnv("APP_ENV", "development"),
			Port:          getEnv("PORT", "3000"),
			LogLevel:      getEnv("LOG_LEVEL", "info"),
			Backend:       getEnv("STORAGE_BACKEND", "mongo"),
			MongoURI:      getEnv("MONGO_URI", ""),
			PostgresDSN:   getEnv("POSTGRES_DSN", ""),
			UsersFile:     getEnv("USERS_FILE", "data/users.json"),
			ExercisesFile: getEnv("EXERCISES_FILE", "data/exercises.json"),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	switch c.Backend {
	case "mongo":
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required when STORAGE_BACKEND=mongo")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "file":
		if c.UsersFile == "" || c.ExercisesFile == "" {
			return errors.New("File storage requires USERS_FILE and EXERCISES_FILE to be set")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: mongo, postgres, file")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
