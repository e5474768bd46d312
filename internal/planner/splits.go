package planner

// Muscles selectable in the tag picker, in display order.
var MuscleNames = []string{
	"Chest", "Triceps", "Shoulders", "Back", "Biceps", "Rear Delts",
	"Quads", "Hamstrings", "Calves", "Glutes", "Core",
}

const SplitFullBody = "Full Body"

var Splits = []string{"Push Pull Legs", "Upper Lower", SplitFullBody, "Arnold"}

// SetOptions are the allowed per-muscle set counts.
var SetOptions = []string{"1", "2", "3"}

func IsSetOption(option string) bool {
	for _, o := range SetOptions {
		if o == option {
			return true
		}
	}
	return false
}

// SplitDays maps a split to its training days. Full Body has an
// implicit single day and no day-selection step.
var SplitDays = map[string][]string{
	"Push Pull Legs": {"Push", "Pull", "Legs"},
	"Upper Lower":    {"Upper", "Lower"},
	"Arnold":         {"Chest/Back", "Shoulders/Arms", "Legs"},
	SplitFullBody:    {},
}

var SplitDayMuscles = map[string]map[string][]string{
	"Push Pull Legs": {
		"Push": {"chest", "triceps", "shoulders"},
		"Pull": {"back", "biceps", "rear delts"},
		"Legs": {"quads", "hamstrings", "glutes", "calves"},
	},
	"Upper Lower": {
		"Upper": {"chest", "triceps", "shoulders", "back", "biceps"},
		"Lower": {"quads", "hamstrings", "glutes", "calves"},
	},
	"Arnold": {
		"Chest/Back":     {"chest", "back", "rear delts"},
		"Shoulders/Arms": {"shoulders", "biceps", "triceps"},
		"Legs":           {"quads", "hamstrings", "glutes", "calves"},
	},
	SplitFullBody: {
		SplitFullBody: {
			"chest", "triceps", "shoulders", "back",
			"biceps", "quads", "hamstrings", "glutes",
		},
	},
}
