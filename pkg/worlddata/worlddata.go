// Package worlddata loads the declarative world description the host derives
// its own options from: the goal choice, one toggle per yaml-option category,
// and the filler trap percentage. These derived options are the "host
// defaults" merged into the registry between the before and after hooks, and
// they include the helper options world modules typically hide.
package worlddata

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blocktales/go-manual/pkg/options"
)

// Goal is one selectable victory condition.
type Goal struct {
	Label string `yaml:"label"`
	Code  int    `yaml:"code"`
}

// Category is an item/location category that surfaces as an auto-generated
// toggle option named after its key.
type Category struct {
	Key         string `yaml:"key"`
	DisplayName string `yaml:"display_name"`
}

// Traps bounds the filler trap percentage option.
type Traps struct {
	Start   int `yaml:"start"`
	End     int `yaml:"end"`
	Default int `yaml:"default"`
}

// World is the parsed world description.
type World struct {
	Game        string     `yaml:"game"`
	GoalDefault string     `yaml:"goal_default"`
	Goals       []Goal     `yaml:"goals"`
	Categories  []Category `yaml:"categories"`
	FillerTraps *Traps     `yaml:"filler_traps"`
}

// Load parses and validates a world data document.
func Load(data []byte) (World, error) {
	var w World
	if err := yaml.Unmarshal(data, &w); err != nil {
		return World{}, fmt.Errorf("worlddata: parse: %w", err)
	}
	if err := w.validate(); err != nil {
		return World{}, err
	}
	return w, nil
}

func (w World) validate() error {
	if strings.TrimSpace(w.Game) == "" {
		return fmt.Errorf("worlddata: game name is required")
	}
	if len(w.Goals) == 0 {
		return fmt.Errorf("worlddata: at least one goal is required")
	}

	labels := make(map[string]struct{}, len(w.Goals))
	codes := make(map[int]struct{}, len(w.Goals))
	for _, g := range w.Goals {
		if strings.TrimSpace(g.Label) == "" {
			return fmt.Errorf("worlddata: goal with empty label")
		}
		if _, dup := labels[g.Label]; dup {
			return fmt.Errorf("worlddata: duplicate goal label %q", g.Label)
		}
		if _, dup := codes[g.Code]; dup {
			return fmt.Errorf("worlddata: duplicate goal code %d", g.Code)
		}
		labels[g.Label] = struct{}{}
		codes[g.Code] = struct{}{}
	}
	if w.GoalDefault != "" {
		if _, ok := labels[w.GoalDefault]; !ok {
			return fmt.Errorf("worlddata: goal default %q is not a declared goal", w.GoalDefault)
		}
	}

	seen := make(map[string]struct{}, len(w.Categories))
	for _, c := range w.Categories {
		if strings.TrimSpace(c.Key) == "" {
			return fmt.Errorf("worlddata: category with empty key")
		}
		if _, dup := seen[c.Key]; dup {
			return fmt.Errorf("worlddata: duplicate category %q", c.Key)
		}
		seen[c.Key] = struct{}{}
	}

	if t := w.FillerTraps; t != nil {
		if t.Start > t.End {
			return fmt.Errorf("worlddata: filler trap bounds are inverted (%d > %d)", t.Start, t.End)
		}
		if t.Default < t.Start || t.Default > t.End {
			return fmt.Errorf("worlddata: filler trap default %d is outside [%d, %d]", t.Default, t.Start, t.End)
		}
	}
	return nil
}

// goalDefaultCode resolves the default goal code, falling back to the first
// declared goal.
func (w World) goalDefaultCode() int {
	if w.GoalDefault != "" {
		for _, g := range w.Goals {
			if g.Label == w.GoalDefault {
				return g.Code
			}
		}
	}
	return w.Goals[0].Code
}

// HostOptions derives the host-owned option definitions from the world data:
// the goal choice, a default-on toggle per category, and the filler trap
// range when declared. Contributed options win over these on key overlap.
func (w World) HostOptions() []options.Definition {
	defs := make([]options.Definition, 0, len(w.Categories)+2)

	choices := make([]options.Choice, 0, len(w.Goals))
	for _, g := range w.Goals {
		choices = append(choices, options.Choice{Label: g.Label, Code: g.Code})
	}
	defs = append(defs, options.NewChoice(
		"goal",
		"Goal",
		fmt.Sprintf("Which goal you need to reach to win %s.", w.Game),
		w.goalDefaultCode(),
		choices...,
	))

	for _, c := range w.Categories {
		defs = append(defs, options.NewDefaultOnToggle(
			c.Key,
			c.DisplayName,
			fmt.Sprintf("Include items and locations in the %s category.", c.Key),
		))
	}

	if t := w.FillerTraps; t != nil {
		defs = append(defs, options.NewRange(
			"filler_traps",
			"Filler Traps",
			"What percentage of filler items are replaced with traps.",
			t.Start, t.End, t.Default,
		))
	}
	return defs
}
