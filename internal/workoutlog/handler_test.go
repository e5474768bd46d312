package workoutlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/konradlukasiewicz/brotein-shake/internal/telemetry/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestHandler() (*Handler, *TestAPI) {
	repo := NewTestAPI()
	handler := NewHandler(repo, metrics.NewTestManager())
	handler.now = func() time.Time {
		return time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	}
	return handler, repo
}

func workoutReq(t *testing.T, method, target string, workout LoggedWorkout) *http.Request {
	t.Helper()
	workoutJson, err := json.Marshal(workout)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(workoutJson))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_HandleAdd(t *testing.T) {
	handler, repo := newTestHandler()

	w := validWorkout()
	w.ID = ""
	rr := httptest.NewRecorder()
	handler.HandleAdd(rr, workoutReq(t, http.MethodPost, "/workoutlog", w))

	require.Equal(t, http.StatusCreated, rr.Code)

	var added LoggedWorkout
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Push Day", added.Title)

	stored, err := repo.Get(context.Background(), w.DateKey)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, added.ID, stored[0].ID)
}

func TestHandler_HandleAdd_ClearsBodyweightWeight(t *testing.T) {
	handler, repo := newTestHandler()

	w := validWorkout()
	w.Exercises = []LoggedExercise{
		{Name: "Pull-Up", Type: "bodyweight", Sets: 3, Reps: 8, Weight: "25", IsBodyweight: true},
	}
	rr := httptest.NewRecorder()
	handler.HandleAdd(rr, workoutReq(t, http.MethodPost, "/workoutlog", w))
	require.Equal(t, http.StatusCreated, rr.Code)

	stored, err := repo.Get(context.Background(), w.DateKey)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "", stored[0].Exercises[0].Weight)
	assert.True(t, stored[0].Exercises[0].IsBodyweight)
}

func TestHandler_HandleAdd_Invalid(t *testing.T) {
	handler, repo := newTestHandler()

	// missing content type
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workoutlog", bytes.NewReader([]byte(`{}`)))
	handler.HandleAdd(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	cases := []struct {
		name   string
		mutate func(w *LoggedWorkout)
	}{
		{"empty title", func(w *LoggedWorkout) { w.Title = " " }},
		{"empty date", func(w *LoggedWorkout) { w.DateKey = "" }},
		{"bad date", func(w *LoggedWorkout) { w.DateKey = "today" }},
		{"no exercises", func(w *LoggedWorkout) { w.Exercises = nil }},
		{"zero sets", func(w *LoggedWorkout) { w.Exercises[0].Sets = 0 }},
		{"zero reps", func(w *LoggedWorkout) { w.Exercises[0].Reps = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := validWorkout()
			tc.mutate(&w)
			rr := httptest.NewRecorder()
			handler.HandleAdd(rr, workoutReq(t, http.MethodPost, "/workoutlog", w))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}

	// nothing was stored by any rejected save
	assert.Empty(t, repo.Logs)
}

func TestHandler_HandleUpdate(t *testing.T) {
	handler, repo := newTestHandler()
	ctx := context.Background()

	w := validWorkout()
	require.NoError(t, repo.Add(ctx, w))

	updated := w
	updated.Title = "Heavy Push Day"
	rr := httptest.NewRecorder()
	handler.HandleUpdate(rr, workoutReq(t, http.MethodPut, "/workoutlog", updated))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp UpdateWorkoutResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "w1", resp.UpdatedID)

	stored, err := repo.Get(ctx, w.DateKey)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Heavy Push Day", stored[0].Title)
}

func TestHandler_HandleUpdate_NoID(t *testing.T) {
	handler, _ := newTestHandler()

	w := validWorkout()
	w.ID = ""
	rr := httptest.NewRecorder()
	handler.HandleUpdate(rr, workoutReq(t, http.MethodPut, "/workoutlog", w))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleDelete(t *testing.T) {
	handler, repo := newTestHandler()
	ctx := context.Background()

	w := validWorkout()
	require.NoError(t, repo.Add(ctx, w))

	req := httptest.NewRequest(http.MethodDelete, "/workoutlog/2026-08-30/w1", nil)
	req = mux.SetURLVars(req, map[string]string{"dateKey": "2026-08-30", "id": "w1"})
	rr := httptest.NewRecorder()
	handler.HandleDelete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp DeleteWorkoutResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "w1", resp.DeletedID)
	assert.Empty(t, repo.Logs)
}

func TestHandler_HandleFeed(t *testing.T) {
	handler, repo := newTestHandler()
	ctx := context.Background()

	older := validWorkout()
	older.ID = "w-old"
	older.DateKey = "2026-08-29"
	require.NoError(t, repo.Add(ctx, older))

	today1 := validWorkout()
	today1.ID = "w-today-1"
	today1.DateKey = "2026-08-30"
	require.NoError(t, repo.Add(ctx, today1))

	today2 := validWorkout()
	today2.ID = "w-today-2"
	today2.DateKey = "2026-08-30"
	require.NoError(t, repo.Add(ctx, today2))

	req := httptest.NewRequest(http.MethodGet, "/workoutlog/feed", nil)
	rr := httptest.NewRecorder()
	handler.HandleFeed(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var feed FeedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &feed))
	require.Len(t, feed.Days, 2)

	assert.Equal(t, "2026-08-30", feed.Days[0].DateKey)
	assert.Equal(t, "Today", feed.Days[0].Label)
	require.Len(t, feed.Days[0].Workouts, 2)
	// logging order within the day
	assert.Equal(t, "w-today-1", feed.Days[0].Workouts[0].ID)
	assert.Equal(t, "w-today-2", feed.Days[0].Workouts[1].ID)

	assert.Equal(t, "2026-08-29", feed.Days[1].DateKey)
	assert.Equal(t, "Yesterday", feed.Days[1].Label)
}

func TestHandler_RepoErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockworkoutsRepo(ctrl)
	handler := NewHandler(repoMock, metrics.NewTestManager())

	repoErr := errors.New("disk on fire")

	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		Return(repoErr)
	rr := httptest.NewRecorder()
	handler.HandleAdd(rr, workoutReq(t, http.MethodPost, "/workoutlog", validWorkout()))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	repoMock.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(repoErr)
	rr = httptest.NewRecorder()
	handler.HandleUpdate(rr, workoutReq(t, http.MethodPut, "/workoutlog", validWorkout()))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	repoMock.EXPECT().
		ListDayKeysDescending(gomock.Any()).
		Return(nil, repoErr)
	rr = httptest.NewRecorder()
	handler.HandleFeed(rr, httptest.NewRequest(http.MethodGet, "/workoutlog/feed", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandler_HandleGetDayAndList(t *testing.T) {
	handler, repo := newTestHandler()
	ctx := context.Background()

	w := validWorkout()
	require.NoError(t, repo.Add(ctx, w))

	req := httptest.NewRequest(http.MethodGet, "/workoutlog/day/2026-08-30", nil)
	req = mux.SetURLVars(req, map[string]string{"dateKey": "2026-08-30"})
	rr := httptest.NewRecorder()
	handler.HandleGetDay(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var workouts []LoggedWorkout
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &workouts))
	require.Len(t, workouts, 1)

	req = httptest.NewRequest(http.MethodGet, "/workoutlog", nil)
	rr = httptest.NewRecorder()
	handler.HandleList(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var all map[string][]LoggedWorkout
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	require.Contains(t, all, "2026-08-30")
}
