package workoutlog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LoggedExercise is one exercise entry of a logged workout session.
type LoggedExercise struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	Weight       string `json:"weight"`
	IsBodyweight bool   `json:"isBW"`
}

// LoggedWorkout is a user-recorded workout session, bucketed under its
// calendar date.
type LoggedWorkout struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Time      string           `json:"time,omitempty"`
	DateKey   string           `json:"dateKey"`
	Exercises []LoggedExercise `json:"exercises"`
}

var (
	ErrTitleEmpty      = errors.New("workout title empty")
	ErrDateEmpty       = errors.New("workout date empty")
	ErrNoExercises     = errors.New("workout has no exercises")
	ErrInvalidDate     = errors.New("workout date not a calendar date")
	ErrInvalidSetsReps = errors.New("exercise sets and reps must be at least 1")
)

const dateKeyLayout = "2006-01-02"

// Validate checks the user-supplied fields, a failing workout is
// rejected as a whole and nothing is stored.
func (w *LoggedWorkout) Validate() error {
	if strings.TrimSpace(w.Title) == "" {
		return ErrTitleEmpty
	}
	if w.DateKey == "" {
		return ErrDateEmpty
	}
	if _, err := time.Parse(dateKeyLayout, w.DateKey); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, w.DateKey)
	}
	if len(w.Exercises) == 0 {
		return ErrNoExercises
	}
	for _, e := range w.Exercises {
		if e.Sets < 1 || e.Reps < 1 {
			return fmt.Errorf("%w: %s", ErrInvalidSetsReps, e.Name)
		}
	}
	return nil
}

// Normalize trims the free-text fields and clears the weight of
// bodyweight exercises.
func (w *LoggedWorkout) Normalize() {
	w.Title = strings.TrimSpace(w.Title)
	w.Time = strings.TrimSpace(w.Time)
	for i := range w.Exercises {
		if w.Exercises[i].IsBodyweight {
			w.Exercises[i].Weight = ""
		}
	}
}

// NewWorkoutID builds a workout id from the current time plus a short
// random suffix.
func NewWorkoutID(now time.Time) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
