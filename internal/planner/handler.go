package planner

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/konradlukasiewicz/brotein-shake/internal/catalog"
	"github.com/konradlukasiewicz/brotein-shake/internal/telemetry/metrics"
	"github.com/konradlukasiewicz/brotein-shake/internal/telemetry/tracing"
	"github.com/konradlukasiewicz/brotein-shake/pkg"
)

const (
	oneHour         = 60 * 60
	planCacheExpire = oneHour * 1
)

type GenerateRequest struct {
	Mode    string   `json:"mode"`
	Muscles []string `json:"muscles,omitempty"`
	Split   string   `json:"split,omitempty"`
	Day     string   `json:"day,omitempty"`
	Sets    string   `json:"sets"`
}

type GenerateResponse struct {
	Muscles   []string            `json:"muscles"`
	Exercises []GeneratedExercise `json:"exercises"`
}

type SplitsResponse struct {
	Splits          map[string][]string            `json:"splits"`
	SplitOrder      []string                       `json:"splitOrder"`
	SplitDayMuscles map[string]map[string][]string `json:"splitDayMuscles"`
	SetOptions      []string                       `json:"setOptions"`
}

type MusclesResponse struct {
	Muscles []string `json:"muscles"`
}

type ExercisesResponse struct {
	Exercises []catalog.Exercise `json:"exercises"`
}

type Handler struct {
	cat     *catalog.Catalog
	cache   *freecache.Cache
	metrics *metrics.Manager
}

func NewHandler(cat *catalog.Catalog, metricsManager *metrics.Manager) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		cat:     cat,
		cache:   freecache.NewCache(1 * megabyte),
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleGetSplits(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.splits")
	defer span.End()

	resp := SplitsResponse{
		Splits:          SplitDays,
		SplitOrder:      Splits,
		SplitDayMuscles: SplitDayMuscles,
		SetOptions:      SetOptions,
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal splits response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGetMuscles(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.muscles")
	defer span.End()

	respJson, err := json.Marshal(MusclesResponse{Muscles: MuscleNames})
	if err != nil {
		log.Errorf("failed to marshal muscles response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGetExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.exercises")
	defer span.End()

	muscle := r.URL.Query().Get("muscle")
	query := r.URL.Query().Get("query")

	var exercises []catalog.Exercise
	if muscle != "" {
		exercises = handler.cat.SortedExercisesFor(muscle)
	} else {
		exercises = handler.cat.Exercises()
	}
	if query != "" {
		q := strings.ToLower(strings.TrimSpace(query))
		var filtered []catalog.Exercise
		for _, e := range exercises {
			if strings.Contains(strings.ToLower(e.Name), q) ||
				strings.Contains(strings.ToLower(e.Primary), q) {
				filtered = append(filtered, e)
			}
		}
		exercises = filtered
	}

	respJson, err := json.Marshal(ExercisesResponse{Exercises: exercises})
	if err != nil {
		log.Errorf("failed to marshal exercises response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.planner.generate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("generate workout, unmarshal json params: %s", err)
		http.Error(w, "generate workout failed", http.StatusBadRequest)
		return
	}

	sel, err := selectionFromRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !sel.CanGenerate() {
		http.Error(w, "error, no target muscles or invalid set count", http.StatusBadRequest)
		return
	}

	muscles := sel.TargetMuscles()
	cacheKey := []byte(fmt.Sprintf("%s::%s::%d", req.Mode, strings.Join(muscles, ","), sel.SetsPerMuscle()))
	if cached, err := handler.cache.Get(cacheKey); err == nil {
		log.Tracef("generate workout, cache hit: %s", cacheKey)
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	resp := GenerateResponse{
		Muscles:   muscles,
		Exercises: Generate(muscles, sel.SetsPerMuscle(), handler.cat),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal generated workout: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, respJson, planCacheExpire); err != nil {
		log.Errorf("failed to cache generated workout: %s", err)
	}

	handler.metrics.CounterWorkoutsGenerated.Inc()
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func selectionFromRequest(req GenerateRequest) (*Selection, error) {
	sel := NewSelection()
	sel.Sets = req.Sets

	switch req.Mode {
	case string(ModeMuscle):
		sel.SwitchToMuscle()
		for _, muscle := range req.Muscles {
			idx := -1
			for i, tag := range sel.Tags {
				if strings.EqualFold(tag.Name, muscle) {
					idx = i
					break
				}
			}
			if idx < 0 {
				return nil, fmt.Errorf("error, unknown muscle: %s", muscle)
			}
			sel.ToggleMuscle(idx)
		}
	case string(ModeSplit):
		sel.SwitchToSplit()
		sel.SelectSplit(req.Split)
		sel.SelectDay(req.Day)
	default:
		return nil, fmt.Errorf("error, unknown mode: %s", req.Mode)
	}

	return sel, nil
}
