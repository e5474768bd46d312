package main

//// Small CLI tool to generate a workout plan from the terminal, without running the service.

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/konradlukasiewicz/brotein-shake/internal/catalog"
	"github.com/konradlukasiewicz/brotein-shake/internal/planner"
)

func init() {
	log.SetOutput(os.Stdout)
}

func main() {
	exercisesPath, priorityPath, split, day, muscles, sets, err := parseAndValidateInput()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cat, err := catalog.LoadFromFiles(exercisesPath, priorityPath)
	if err != nil {
		log.Fatalf("Failed to load exercise catalog: %v\n", err)
	}

	selection := planner.NewSelection()
	if muscles != "" {
		selection.SwitchToMuscle()
		for _, muscle := range strings.Split(muscles, ",") {
			muscle = strings.TrimSpace(muscle)
			index := muscleTagIndex(selection, muscle)
			if index < 0 {
				log.Fatalf("Unknown muscle group: %s\n", muscle)
			}
			selection.ToggleMuscle(index)
		}
	} else {
		selection.SelectSplit(split)
		if day != "" {
			selection.SelectDay(day)
		}
	}
	selection.PickSets(sets)

	if !selection.CanGenerate() {
		log.Fatalf("Selection incomplete, cannot generate a plan\n")
	}

	targetMuscles := selection.TargetMuscles()
	generated := planner.Generate(targetMuscles, selection.SetsPerMuscle(), cat)

	log.Printf("Target muscle groups: %s\n", strings.Join(targetMuscles, ", "))
	log.Println("----------------------------------------------------")
	for i, exercise := range generated {
		types := ""
		if len(exercise.Type) > 0 {
			types = fmt.Sprintf(" [%s]", strings.Join(exercise.Type, ", "))
		}
		log.Printf("%2d. %s (%s)%s\n", i+1, exercise.Name, exercise.Muscle, types)
	}
}

func muscleTagIndex(selection *planner.Selection, muscle string) int {
	for i, tag := range selection.Tags {
		if strings.EqualFold(tag.Name, muscle) {
			return i
		}
	}
	return -1
}

func parseAndValidateInput() (string, string, string, string, string, string, error) {
	exercisesPath := flag.String("exercises", "./assets/data/exercises.json", "Path to the exercises catalog JSON file")
	priorityPath := flag.String("priority", "./assets/data/priority.json", "Path to the priority table JSON file")
	split := flag.String("split", "", "Workout split (e.g. 'Push Pull Legs')")
	day := flag.String("day", "", "Split day (e.g. 'Push'), not needed for 'Full Body'")
	muscles := flag.String("muscles", "", "Comma-separated muscle groups (alternative to -split)")
	sets := flag.String("sets", "", "Exercises per muscle group (1, 2 or 3)")

	flag.Parse()

	if *split == "" && *muscles == "" {
		return "", "", "", "", "", "", fmt.Errorf("either a split or muscle groups are required (use -split or -muscles)")
	}
	if *split != "" && *muscles != "" {
		return "", "", "", "", "", "", fmt.Errorf("use either -split or -muscles, not both")
	}
	if *sets == "" {
		return "", "", "", "", "", "", fmt.Errorf("exercises per muscle group required (use -sets)")
	}

	if _, err := os.Stat(*exercisesPath); os.IsNotExist(err) {
		return "", "", "", "", "", "", fmt.Errorf("exercises file does not exist at path: %s", *exercisesPath)
	}
	if _, err := os.Stat(*priorityPath); os.IsNotExist(err) {
		return "", "", "", "", "", "", fmt.Errorf("priority file does not exist at path: %s", *priorityPath)
	}

	return *exercisesPath, *priorityPath, *split, *day, *muscles, *sets, nil
}
