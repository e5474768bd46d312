package planner

import (
	"sort"
	"strconv"
	"strings"
)

type Mode string

const (
	ModeSplit  Mode = "split"
	ModeMuscle Mode = "muscle"
)

// Selection is the in-progress generation request state. Only the
// fields of the active mode are ever populated; switching mode resets
// the other mode's selections.
type Selection struct {
	Mode  Mode        `json:"mode"`
	Tags  []MuscleTag `json:"tags"`
	Split string      `json:"split,omitempty"`
	Day   string      `json:"day,omitempty"`
	Sets  string      `json:"sets,omitempty"`
}

func NewSelection() *Selection {
	return &Selection{
		Mode: ModeSplit,
		Tags: NewMuscleTags(MuscleNames),
	}
}

func (s *Selection) SwitchToSplit() {
	s.Mode = ModeSplit
	s.Day = ""
	for i := range s.Tags {
		s.Tags[i].Selected = false
		s.Tags[i].SelectedRank = 0
	}
}

func (s *Selection) SwitchToMuscle() {
	s.Mode = ModeMuscle
	s.Split = ""
	s.Day = ""
}

// SelectSplit sets the split and clears any previously chosen day.
func (s *Selection) SelectSplit(split string) {
	s.Split = split
	s.Day = ""
}

func (s *Selection) SelectDay(day string) {
	s.Day = day
}

func (s *Selection) ToggleMuscle(index int) {
	s.Tags = ToggleTag(s.Tags, index)
}

// PickSets toggles the set count choice, picking the same option again
// clears it.
func (s *Selection) PickSets(option string) {
	if s.Sets == option {
		s.Sets = ""
		return
	}
	s.Sets = option
}

// TargetMuscles resolves the ordered lowercase muscle names the current
// selection targets. Incomplete selections resolve to empty, never to
// an error.
func (s *Selection) TargetMuscles() []string {
	if s.Mode == ModeMuscle {
		var selected []MuscleTag
		for _, t := range s.Tags {
			if t.Selected {
				selected = append(selected, t)
			}
		}
		sort.Slice(selected, func(i, j int) bool {
			return selected[i].SelectedRank < selected[j].SelectedRank
		})
		muscles := make([]string, 0, len(selected))
		for _, t := range selected {
			muscles = append(muscles, strings.ToLower(t.Name))
		}
		return muscles
	}

	if s.Split == "" {
		return nil
	}
	if s.Split == SplitFullBody {
		return SplitDayMuscles[SplitFullBody][SplitFullBody]
	}
	if s.Day == "" {
		return nil
	}
	return SplitDayMuscles[s.Split][s.Day]
}

// SetsPerMuscle parses the chosen set count, 0 when unset or outside
// the offered options.
func (s *Selection) SetsPerMuscle() int {
	if !IsSetOption(s.Sets) {
		return 0
	}
	sets, err := strconv.Atoi(s.Sets)
	if err != nil {
		return 0
	}
	return sets
}

func (s *Selection) CanGenerate() bool {
	return len(s.TargetMuscles()) > 0 && s.SetsPerMuscle() >= 1
}
