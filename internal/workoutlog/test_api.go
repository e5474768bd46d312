package workoutlog

import (
	"context"
	"sort"
	"sync"
)

// TestAPI is an in-memory workout store used in tests.
type TestAPI struct {
	mutex sync.RWMutex
	Logs  map[string][]LoggedWorkout
}

func NewTestAPI() *TestAPI {
	return &TestAPI{
		Logs: map[string][]LoggedWorkout{},
	}
}

func (ta *TestAPI) Add(_ context.Context, workout LoggedWorkout) error {
	ta.mutex.Lock()
	defer ta.mutex.Unlock()
	ta.Logs[workout.DateKey] = append(ta.Logs[workout.DateKey], workout)
	return nil
}

func (ta *TestAPI) Update(_ context.Context, workout LoggedWorkout) error {
	ta.mutex.Lock()
	defer ta.mutex.Unlock()
	bucket := ta.Logs[workout.DateKey]
	for i := range bucket {
		if bucket[i].ID == workout.ID {
			bucket[i] = workout
			return nil
		}
	}
	return nil
}

func (ta *TestAPI) Delete(_ context.Context, dateKey, workoutID string) error {
	ta.mutex.Lock()
	defer ta.mutex.Unlock()
	bucket := ta.Logs[dateKey]
	next := bucket[:0:0]
	for _, w := range bucket {
		if w.ID != workoutID {
			next = append(next, w)
		}
	}
	if len(next) == 0 {
		delete(ta.Logs, dateKey)
		return nil
	}
	ta.Logs[dateKey] = next
	return nil
}

func (ta *TestAPI) Get(_ context.Context, dateKey string) ([]LoggedWorkout, error) {
	ta.mutex.RLock()
	defer ta.mutex.RUnlock()
	bucket := ta.Logs[dateKey]
	workouts := make([]LoggedWorkout, len(bucket))
	copy(workouts, bucket)
	return workouts, nil
}

func (ta *TestAPI) All(_ context.Context) (map[string][]LoggedWorkout, error) {
	ta.mutex.RLock()
	defer ta.mutex.RUnlock()
	all := make(map[string][]LoggedWorkout, len(ta.Logs))
	for dateKey, bucket := range ta.Logs {
		workouts := make([]LoggedWorkout, len(bucket))
		copy(workouts, bucket)
		all[dateKey] = workouts
	}
	return all, nil
}

func (ta *TestAPI) ListDayKeysDescending(_ context.Context) ([]string, error) {
	ta.mutex.RLock()
	defer ta.mutex.RUnlock()
	var dayKeys []string
	for dateKey, bucket := range ta.Logs {
		if len(bucket) > 0 {
			dayKeys = append(dayKeys, dateKey)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dayKeys)))
	return dayKeys, nil
}
