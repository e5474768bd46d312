package workoutlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/konradlukasiewicz/brotein-shake/internal/telemetry/tracing"
)

// FileAPI is a day-bucketed workout store persisted as a single JSON
// file. Every mutation is flushed to disk before returning.
type FileAPI struct {
	path  string
	logs  map[string][]LoggedWorkout
	mutex sync.RWMutex
}

func NewFileAPI(path string) (*FileAPI, error) {
	if path == "" {
		return nil, errors.New("workout log path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create workout log dir: %w", err)
	}
	return &FileAPI{
		path: path,
		logs: loadLogs(path),
	}, nil
}

// loadLogs reads the stored log; missing or corrupt data yields an
// empty store rather than an error.
func loadLogs(path string) map[string][]LoggedWorkout {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Errorf("workout log: read %s: %s", path, err)
		}
		return map[string][]LoggedWorkout{}
	}

	logs := map[string][]LoggedWorkout{}
	if err := json.Unmarshal(raw, &logs); err != nil {
		log.Errorf("workout log: unmarshal %s, starting empty: %s", path, err)
		return map[string][]LoggedWorkout{}
	}
	return logs
}

// save flushes the whole log structure to disk. Callers must hold the
// write lock.
func (fa *FileAPI) save() error {
	logsJson, err := json.Marshal(fa.logs)
	if err != nil {
		return fmt.Errorf("marshal workout log: %w", err)
	}
	if err := os.WriteFile(fa.path, logsJson, 0644); err != nil {
		return fmt.Errorf("write workout log: %w", err)
	}
	return nil
}

func (fa *FileAPI) Add(ctx context.Context, workout LoggedWorkout) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "workoutLog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workout.ID))
	span.SetAttributes(attribute.String("workout.dateKey", workout.DateKey))

	fa.mutex.Lock()
	defer fa.mutex.Unlock()

	fa.logs[workout.DateKey] = append(fa.logs[workout.DateKey], workout)
	if err := fa.save(); err != nil {
		return fmt.Errorf("workout added, but failed to save log: %w", err)
	}

	log.Debugf("workout log: added [%s] to [%s]", workout.ID, workout.DateKey)
	return nil
}

// Update replaces the bucket entry matching the workout id, keeping
// its position. An unmatched id leaves the bucket unchanged.
func (fa *FileAPI) Update(ctx context.Context, workout LoggedWorkout) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "workoutLog.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workout.ID))

	fa.mutex.Lock()
	defer fa.mutex.Unlock()

	bucket := fa.logs[workout.DateKey]
	for i := range bucket {
		if bucket[i].ID == workout.ID {
			bucket[i] = workout
			if err := fa.save(); err != nil {
				return fmt.Errorf("workout updated, but failed to save log: %w", err)
			}
			log.Debugf("workout log: updated [%s] in [%s]", workout.ID, workout.DateKey)
			return nil
		}
	}

	log.Debugf("workout log: update [%s] in [%s]: no match, nothing done", workout.ID, workout.DateKey)
	return nil
}

// Delete removes the matching entry; emptying a bucket removes the
// bucket itself. An unmatched id is not an error.
func (fa *FileAPI) Delete(ctx context.Context, dateKey, workoutID string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "workoutLog.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workoutID))

	fa.mutex.Lock()
	defer fa.mutex.Unlock()

	bucket := fa.logs[dateKey]
	next := bucket[:0:0]
	for _, w := range bucket {
		if w.ID != workoutID {
			next = append(next, w)
		}
	}
	if len(next) == len(bucket) {
		log.Debugf("workout log: delete [%s] from [%s]: no match, nothing done", workoutID, dateKey)
		return nil
	}

	if len(next) == 0 {
		delete(fa.logs, dateKey)
	} else {
		fa.logs[dateKey] = next
	}

	if err := fa.save(); err != nil {
		return fmt.Errorf("workout deleted, but failed to save log: %w", err)
	}

	log.Debugf("workout log: deleted [%s] from [%s]", workoutID, dateKey)
	return nil
}

func (fa *FileAPI) Get(ctx context.Context, dateKey string) ([]LoggedWorkout, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "workoutLog.get")
	defer span.End()

	fa.mutex.RLock()
	defer fa.mutex.RUnlock()

	bucket := fa.logs[dateKey]
	workouts := make([]LoggedWorkout, len(bucket))
	copy(workouts, bucket)
	return workouts, nil
}

func (fa *FileAPI) All(ctx context.Context) (map[string][]LoggedWorkout, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "workoutLog.all")
	defer span.End()

	fa.mutex.RLock()
	defer fa.mutex.RUnlock()

	all := make(map[string][]LoggedWorkout, len(fa.logs))
	for dateKey, bucket := range fa.logs {
		workouts := make([]LoggedWorkout, len(bucket))
		copy(workouts, bucket)
		all[dateKey] = workouts
	}
	return all, nil
}

// ListDayKeysDescending returns the non-empty bucket keys, most recent
// calendar date first.
func (fa *FileAPI) ListDayKeysDescending(ctx context.Context) ([]string, error) {
	_, span := tracing.GlobalTracer.Start(ctx, "workoutLog.listDayKeys")
	defer span.End()

	fa.mutex.RLock()
	defer fa.mutex.RUnlock()

	var dayKeys []string
	for dateKey, bucket := range fa.logs {
		if len(bucket) > 0 {
			dayKeys = append(dayKeys, dateKey)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dayKeys)))
	return dayKeys, nil
}
