package service

import (
	"context"
	"strconv"
	"time"

	"github.com/Boikano11/exercise-tracker/internal"
	"github.com/Boikano11/exercise-tracker/internal/storage"
)

// logDateFormat is the long textual form log entries carry, e.g. "Sun Jan 01 2023".
const logDateFormat = "Mon Jan 02 2006"

// LogQuery holds the raw query parameters of a log request. Parsing and
// validation happen here, before any storage call.
type LogQuery struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit string `form:"limit"`
}

type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogView struct {
	ID    string     `json:"id"`
	Log   []LogEntry `json:"log"`
	Count int        `json:"count"`
}

// GetLog returns a filtered, optionally capped view of a user's exercise
// history. The user id is echoed verbatim and never resolved: an unknown or
// empty user yields an empty log, not a 404. Entries keep the storage-native
// order of the underlying query; no sort is applied.
func GetLog(ctx context.Context, exercises storage.ExerciseRepository, userID string, q *LogQuery) (*LogView, error) {
	filter, err := buildFilter(userID, q)
	if err != nil {
		return nil, err
	}

	matched, err := exercises.FindExercises(ctx, filter)
	if err != nil {
		return nil, internal.StorageError("Failed to fetch exercises.", err)
	}

	entries := make([]LogEntry, 0, len(matched))
	for _, e := range matched {
		entries = append(entries, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date.Format(logDateFormat),
		})
	}

	return &LogView{ID: userID, Log: entries, Count: len(entries)}, nil
}

// buildFilter validates from/to/limit and translates them into the storage
// filter. Both date bounds are inclusive; from > to simply matches nothing.
func buildFilter(userID string, q *LogQuery) (storage.ExerciseFilter, error) {
	filter := storage.ExerciseFilter{UserID: userID}

	if q.From != "" {
		from, err := time.Parse(dayFormat, q.From)
		if err != nil {
			return filter, internal.ValidationError(`Invalid "from" date format. Please use yyyy-mm-dd.`)
		}
		filter.From = &from
	}

	if q.To != "" {
		to, err := time.Parse(dayFormat, q.To)
		if err != nil {
			return filter, internal.ValidationError(`Invalid "to" date format. Please use yyyy-mm-dd.`)
		}
		filter.To = &to
	}

	if q.Limit != "" {
		limit, err := strconv.Atoi(q.Limit)
		if err != nil {
			return filter, internal.ValidationError(`Invalid "limit" value. Please use an integer.`)
		}
		// Non-positive means uncapped, the same as leaving it out.
		if limit > 0 {
			filter.Limit = limit
		}
	}

	return filter, nil
}
