package catalog

import "strings"

// Exercise is one catalog entry. Name is unique within the catalog.
type Exercise struct {
	Name    string   `json:"name"`
	Primary string   `json:"primary"`
	Type    []string `json:"type"`
}

const TypeBodyweight = "bodyweight"

var bodyweightNameHints = []string{
	"push up", "pull up", "chin up", "dip",
	"plank", "crunch", "leg raise", "sit up",
}

// HasBodyweightOption reports whether the exercise can be performed
// without external load, either via an explicit bodyweight type or a
// well-known bodyweight movement name.
func (e Exercise) HasBodyweightOption() bool {
	for _, t := range e.Type {
		if t == TypeBodyweight {
			return true
		}
	}
	name := strings.ToLower(e.Name)
	for _, hint := range bodyweightNameHints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}

// DefaultType returns the first modality of the exercise, or empty.
func (e Exercise) DefaultType() string {
	if len(e.Type) == 0 {
		return ""
	}
	return e.Type[0]
}
