package workoutlog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/konradlukasiewicz/brotein-shake/internal/telemetry/metrics"
	"github.com/konradlukasiewicz/brotein-shake/internal/telemetry/tracing"
	"github.com/konradlukasiewicz/brotein-shake/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workoutlog_mocks_test.go -package=workoutlog

type workoutsRepo interface {
	Add(ctx context.Context, workout LoggedWorkout) error
	Update(ctx context.Context, workout LoggedWorkout) error
	Delete(ctx context.Context, dateKey, workoutID string) error
	Get(ctx context.Context, dateKey string) ([]LoggedWorkout, error)
	All(ctx context.Context) (map[string][]LoggedWorkout, error)
	ListDayKeysDescending(ctx context.Context) ([]string, error)
}

type UpdateWorkoutResponse struct {
	UpdatedID string `json:"updatedId"`
}

type DeleteWorkoutResponse struct {
	DeletedID string `json:"deletedId"`
}

type DayGroup struct {
	DateKey  string          `json:"dateKey"`
	Label    string          `json:"label"`
	Workouts []LoggedWorkout `json:"workouts"`
}

type FeedResponse struct {
	Days []DayGroup `json:"days"`
}

type Handler struct {
	repo    workoutsRepo
	metrics *metrics.Manager
	now     func() time.Time
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
		now:     time.Now,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout LoggedWorkout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("add workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	workout.Normalize()
	if err := workout.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if workout.ID == "" {
		workout.ID = NewWorkoutID(handler.now())
	}

	if err := handler.repo.Add(ctx, workout); err != nil {
		log.Errorf("failed to add workout [%s] to [%s]: %s", workout.ID, workout.DateKey, err)
		http.Error(w, "error, failed to add workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutsLogged.Inc()
	handler.metrics.CounterExercisesLogged.Add(float64(len(workout.Exercises)))

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("failed to marshal added workout: %s", err)
		http.Error(w, "error, failed to add workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: [%s] %s", workout.ID, workout.Title)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout LoggedWorkout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	if workout.ID == "" {
		http.Error(w, "error, workout id empty", http.StatusBadRequest)
		return
	}

	workout.Normalize()
	if err := workout.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, workout); err != nil {
		log.Errorf("failed to update workout [%s]: %s", workout.ID, err)
		http.Error(w, "error, failed to update workout", http.StatusInternalServerError)
		return
	}

	updateRespJson, err := json.Marshal(UpdateWorkoutResponse{UpdatedID: workout.ID})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout updated: [%s] %s", workout.ID, workout.Title)
	pkg.WriteJSONResponseOK(w, string(updateRespJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.delete")
	defer span.End()

	vars := mux.Vars(r)
	dateKey := vars["dateKey"]
	if dateKey == "" {
		http.Error(w, "error, date key empty", http.StatusBadRequest)
		return
	}
	workoutID := vars["id"]
	if workoutID == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, dateKey, workoutID); err != nil {
		log.Errorf("failed to delete workout [%s] from [%s]: %s", workoutID, dateKey, err)
		http.Error(w, "workout not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteWorkoutResponse{DeletedID: workoutID})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.getDay")
	defer span.End()

	vars := mux.Vars(r)
	dateKey := vars["dateKey"]
	if dateKey == "" {
		http.Error(w, "error, date key empty", http.StatusBadRequest)
		return
	}

	workouts, err := handler.repo.Get(ctx, dateKey)
	if err != nil {
		log.Errorf("failed to get workouts for [%s]: %s", dateKey, err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("failed to marshal workouts: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutsJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.list")
	defer span.End()

	all, err := handler.repo.All(ctx)
	if err != nil {
		log.Errorf("failed to list workouts: %s", err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}

	allJson, err := json.Marshal(all)
	if err != nil {
		log.Errorf("failed to marshal workout log: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, allJson, http.StatusOK)
}

// HandleFeed renders the history feed: day groups in reverse
// chronological order, workouts within a day in logging order.
func (handler *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.feed")
	defer span.End()

	dayKeys, err := handler.repo.ListDayKeysDescending(ctx)
	if err != nil {
		log.Errorf("failed to list day keys: %s", err)
		http.Error(w, "failed to get workout feed", http.StatusInternalServerError)
		return
	}

	now := handler.now()
	feed := FeedResponse{Days: []DayGroup{}}
	for _, dateKey := range dayKeys {
		workouts, err := handler.repo.Get(ctx, dateKey)
		if err != nil {
			log.Errorf("failed to get workouts for [%s]: %s", dateKey, err)
			http.Error(w, "failed to get workout feed", http.StatusInternalServerError)
			return
		}
		feed.Days = append(feed.Days, DayGroup{
			DateKey:  dateKey,
			Label:    HumanDayLabel(dateKey, now),
			Workouts: workouts,
		})
	}

	feedJson, err := json.Marshal(feed)
	if err != nil {
		log.Errorf("failed to marshal workout feed: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, feedJson, http.StatusOK)
}
