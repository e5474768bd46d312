package planner

import "github.com/konradlukasiewicz/brotein-shake/internal/catalog"

// GeneratedExercise is one planned exercise, carrying the muscle it
// was generated for.
type GeneratedExercise struct {
	Name   string   `json:"name"`
	Muscle string   `json:"muscle"`
	Type   []string `json:"type"`
}

// Generate produces the workout plan for the target muscles: per
// muscle, in order, the top setsPerMuscle entries of its priority
// list. Shorter lists yield fewer entries. The same exercise may show
// up under several muscles, the plan is per muscle, not a set.
func Generate(targetMuscles []string, setsPerMuscle int, cat *catalog.Catalog) []GeneratedExercise {
	if setsPerMuscle < 1 {
		setsPerMuscle = 1
	}

	var result []GeneratedExercise
	for _, muscle := range targetMuscles {
		preferred := cat.PriorityFor(muscle)
		picks := preferred
		if len(picks) > setsPerMuscle {
			picks = picks[:setsPerMuscle]
		}
		for _, name := range picks {
			result = append(result, GeneratedExercise{
				Name:   name,
				Muscle: muscle,
				Type:   cat.TypesFor(name),
			})
		}
	}
	return result
}
