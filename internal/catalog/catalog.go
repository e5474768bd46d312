package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// PriorityTable maps a muscle name to its exercise names, most
// preferred first.
type PriorityTable map[string][]string

// Catalog holds the static exercise table and the per-muscle priority
// lists. Loaded once at startup and never mutated afterwards.
type Catalog struct {
	exercises []Exercise
	byName    map[string]Exercise
	priority  PriorityTable
}

func New(exercises []Exercise, priority PriorityTable) *Catalog {
	byName := make(map[string]Exercise, len(exercises))
	for _, e := range exercises {
		byName[e.Name] = e
	}
	return &Catalog{
		exercises: exercises,
		byName:    byName,
		priority:  priority,
	}
}

// LoadFromFiles reads the exercise table and the priority table from
// the given JSON files.
func LoadFromFiles(exercisesPath, priorityPath string) (*Catalog, error) {
	exercisesData, err := os.ReadFile(exercisesPath)
	if err != nil {
		return nil, fmt.Errorf("read exercises file: %w", err)
	}
	var exercises []Exercise
	if err := json.Unmarshal(exercisesData, &exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises: %w", err)
	}

	priorityData, err := os.ReadFile(priorityPath)
	if err != nil {
		return nil, fmt.Errorf("read priority file: %w", err)
	}
	var priority PriorityTable
	if err := json.Unmarshal(priorityData, &priority); err != nil {
		return nil, fmt.Errorf("unmarshal priority table: %w", err)
	}

	return New(exercises, priority), nil
}

func (c *Catalog) Exercises() []Exercise {
	return c.exercises
}

func (c *Catalog) ExerciseByName(name string) (Exercise, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// TypesFor returns the modality tags of the named exercise, or nil
// when the catalog has no such entry.
func (c *Catalog) TypesFor(name string) []string {
	return c.byName[name].Type
}

// PriorityFor returns the preference-ordered exercise names for the
// muscle, or nil for an unknown muscle.
func (c *Catalog) PriorityFor(muscle string) []string {
	return c.priority[muscle]
}

// Muscles returns all muscle names present in the priority table,
// sorted alphabetically.
func (c *Catalog) Muscles() []string {
	muscles := make([]string, 0, len(c.priority))
	for m := range c.priority {
		muscles = append(muscles, m)
	}
	sort.Strings(muscles)
	return muscles
}

// SortedExercisesFor returns all exercises whose primary muscle is the
// given one, ordered by their priority-table rank, unranked entries
// last, ties broken by name.
func (c *Catalog) SortedExercisesFor(muscle string) []Exercise {
	rank := make(map[string]int, len(c.priority[muscle]))
	for i, name := range c.priority[muscle] {
		rank[name] = i
	}

	var result []Exercise
	for _, e := range c.exercises {
		if e.Primary == muscle {
			result = append(result, e)
		}
	}

	const unranked = int(^uint(0) >> 1)
	sort.SliceStable(result, func(i, j int) bool {
		ri, ok := rank[result[i].Name]
		if !ok {
			ri = unranked
		}
		rj, ok := rank[result[j].Name]
		if !ok {
			rj = unranked
		}
		if ri != rj {
			return ri < rj
		}
		return result[i].Name < result[j].Name
	})

	return result
}

// Search returns exercises whose name or primary muscle contains the
// query, case insensitive. Empty query matches everything.
func (c *Catalog) Search(query string) []Exercise {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.exercises
	}
	var result []Exercise
	for _, e := range c.exercises {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Primary), q) {
			result = append(result, e)
		}
	}
	return result
}
