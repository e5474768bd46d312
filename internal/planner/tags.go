package planner

// MuscleTag is one entry of the ranked muscle picker. Selected tags
// carry a rank reflecting selection order, first picked gets rank 1.
type MuscleTag struct {
	Name          string `json:"name"`
	OriginalIndex int    `json:"originalIndex"`
	Selected      bool   `json:"selected"`
	SelectedRank  int    `json:"selectedRank,omitempty"`
}

func NewMuscleTags(names []string) []MuscleTag {
	tags := make([]MuscleTag, len(names))
	for i, name := range names {
		tags[i] = MuscleTag{Name: name, OriginalIndex: i}
	}
	return tags
}

// ToggleTag flips the selection state of the tag at index and returns
// the updated tag set. Selecting appends to the rank order; deselecting
// closes the rank gap, so ranks among selected tags always form the
// sequence 1..k.
func ToggleTag(tags []MuscleTag, index int) []MuscleTag {
	next := make([]MuscleTag, len(tags))
	copy(next, tags)
	if index < 0 || index >= len(next) {
		return next
	}

	tag := &next[index]
	if !tag.Selected {
		maxRank := 0
		for _, t := range next {
			if t.Selected && t.SelectedRank > maxRank {
				maxRank = t.SelectedRank
			}
		}
		tag.Selected = true
		tag.SelectedRank = maxRank + 1
		return next
	}

	removed := tag.SelectedRank
	tag.Selected = false
	tag.SelectedRank = 0
	for i := range next {
		if next[i].Selected && next[i].SelectedRank > removed {
			next[i].SelectedRank--
		}
	}
	return next
}
