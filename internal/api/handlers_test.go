package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Boikano11/exercise-tracker/internal"
	"github.com/Boikano11/exercise-tracker/internal/service"
	"github.com/Boikano11/exercise-tracker/internal/storage"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	store, err := storage.NewFileStore(filepath.Join(dir, "users.json"), filepath.Join(dir, "exercises.json"), logger)
	require.NoError(t, err)

	return NewRouter(NewApp(logger, store), "")
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req, err := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)
	r.ServeHTTP(rec, req)
	return rec
}

func TestExerciseFlow(t *testing.T) {
	r := setupRouter(t)

	// Create a user.
	rec := postForm(t, r, "/api/users", url.Values{"username": {"fcc_test"}})
	require.Equal(t, 200, rec.Code)
	var user internal.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "fcc_test", user.Username)

	// The user shows up in the listing exactly once.
	rec = get(t, r, "/api/users")
	require.Equal(t, 200, rec.Code)
	var users []internal.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, user.ID, users[0].ID)

	// Log an exercise against it.
	rec = postForm(t, r, "/api/users/"+user.ID+"/exercises", url.Values{
		"description": {"test run"},
		"duration":    {"30"},
		"date":        {"2023-01-01"},
	})
	require.Equal(t, 200, rec.Code)
	var result service.ExerciseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, user.ID, result.ID)
	assert.Equal(t, "fcc_test", result.Username)
	assert.Equal(t, "test run", result.Description)
	assert.Equal(t, 30, result.Duration)
	assert.Equal(t, "2023-01-01", result.Date)

	// Query the log.
	rec = get(t, r, "/api/users/"+user.ID+"/logs")
	require.Equal(t, 200, rec.Code)
	var view service.LogView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, user.ID, view.ID)
	assert.Equal(t, 1, view.Count)
	require.Len(t, view.Log, 1)
	assert.Equal(t, "test run", view.Log[0].Description)
	assert.Equal(t, 30, view.Log[0].Duration)
	assert.Equal(t, "Sun Jan 01 2023", view.Log[0].Date)
}

func TestPostUser_EmptyUsername(t *testing.T) {
	r := setupRouter(t)

	rec := postForm(t, r, "/api/users", url.Values{})
	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestGetUsers_EmptyIsJSONArray(t *testing.T) {
	r := setupRouter(t)

	rec := get(t, r, "/api/users")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestPostExercise_Validation(t *testing.T) {
	r := setupRouter(t)

	rec := postForm(t, r, "/api/users", url.Values{"username": {"fcc_test"}})
	require.Equal(t, 200, rec.Code)
	var user internal.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))

	cases := []struct {
		name string
		form url.Values
		code int
	}{
		{"missing description", url.Values{"duration": {"30"}}, 400},
		{"missing duration", url.Values{"description": {"test run"}}, 400},
		{"non-integer duration", url.Values{"description": {"test run"}, "duration": {"30abc"}}, 400},
		{"malformed date", url.Values{"description": {"test run"}, "duration": {"30"}, "date": {"not-a-date"}}, 400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postForm(t, r, "/api/users/"+user.ID+"/exercises", tc.form)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestPostExercise_UnknownUser(t *testing.T) {
	r := setupRouter(t)

	rec := postForm(t, r, "/api/users/ghost/exercises", url.Values{
		"description": {"test run"},
		"duration":    {"30"},
	})
	assert.Equal(t, 404, rec.Code)

	// Nothing was written: the ghost's log is still empty.
	rec = get(t, r, "/api/users/ghost/logs")
	require.Equal(t, 200, rec.Code)
	var view service.LogView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 0, view.Count)
}

func TestGetLogs_QueryValidation(t *testing.T) {
	r := setupRouter(t)

	rec := get(t, r, "/api/users/u1/logs?from=banana")
	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), `Invalid \"from\" date format`)

	rec = get(t, r, "/api/users/u1/logs?to=banana")
	assert.Equal(t, 400, rec.Code)

	rec = get(t, r, "/api/users/u1/logs?limit=banana")
	assert.Equal(t, 400, rec.Code)
}

func TestGetLogs_RangeAndLimit(t *testing.T) {
	r := setupRouter(t)

	rec := postForm(t, r, "/api/users", url.Values{"username": {"fcc_test"}})
	require.Equal(t, 200, rec.Code)
	var user internal.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))

	for _, date := range []string{"2023-01-01", "2023-01-05", "2023-01-10"} {
		rec = postForm(t, r, "/api/users/"+user.ID+"/exercises", url.Values{
			"description": {"test run"},
			"duration":    {"30"},
			"date":        {date},
		})
		require.Equal(t, 200, rec.Code)
	}

	rec = get(t, r, "/api/users/"+user.ID+"/logs?from=2023-01-01&to=2023-01-05")
	require.Equal(t, 200, rec.Code)
	var view service.LogView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 2, view.Count)

	rec = get(t, r, "/api/users/"+user.ID+"/logs?limit=1")
	require.Equal(t, 200, rec.Code)
	view = service.LogView{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 1, view.Count)

	rec = get(t, r, "/api/users/"+user.ID+"/logs?from=2023-02-01&to=2023-01-01")
	require.Equal(t, 200, rec.Code)
	view = service.LogView{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 0, view.Count)
}

func TestRequestIDHeader(t *testing.T) {
	r := setupRouter(t)

	rec := get(t, r, "/api/users")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
