package model

import (
	"fmt"
	"strings"
)

// Kind is the closed set of option kinds the registry understands.
type Kind string

const (
	// KindToggle is a boolean option that defaults to off.
	KindToggle Kind = "toggle"
	// KindDefaultOnToggle is a boolean option that defaults to on.
	KindDefaultOnToggle Kind = "default_on_toggle"
	// KindChoice is an enumerated option; exactly one labelled code is
	// selected at generation time.
	KindChoice Kind = "choice"
	// KindRange is an integer option with inclusive bounds.
	KindRange Kind = "range"
)

// Visibility controls whether an option appears in player-facing output such
// as the generated template YAML or the option documentation page.
type Visibility string

const (
	VisibilityVisible Visibility = "visible"
	VisibilityHidden  Visibility = "hidden"
)

// Choice pairs a player-facing label with the integer code the generator
// stores for it.
type Choice struct {
	Label string
	Code  int
}

// Definition describes a single player-configurable option: its unique key,
// presentation metadata, and kind-specific payload. Definitions are plain
// data; they are created once at start-up and never mutated afterwards except
// for the Visibility flag, which the post-definition hooks may flip.
type Definition struct {
	Key         string
	Kind        Kind
	DisplayName string
	Description string

	// DefaultOn is the resting state for toggle kinds.
	DefaultOn bool

	// RangeStart and RangeEnd are the inclusive bounds for KindRange.
	RangeStart int
	RangeEnd   int

	// Default is the resting integer value for KindRange, or the resting
	// code for KindChoice.
	Default int

	// Choices enumerates the selectable codes for KindChoice, in
	// presentation order.
	Choices []Choice

	Visibility Visibility
}

// NewToggle builds a boolean option that defaults to off.
func NewToggle(key, displayName, description string) Definition {
	return Definition{
		Key:         key,
		Kind:        KindToggle,
		DisplayName: displayName,
		Description: description,
		Visibility:  VisibilityVisible,
	}
}

// NewDefaultOnToggle builds a boolean option that defaults to on.
func NewDefaultOnToggle(key, displayName, description string) Definition {
	return Definition{
		Key:         key,
		Kind:        KindDefaultOnToggle,
		DisplayName: displayName,
		Description: description,
		DefaultOn:   true,
		Visibility:  VisibilityVisible,
	}
}

// NewChoice builds an enumerated option. The default code must be one of the
// supplied choices; Validate reports a violation.
func NewChoice(key, displayName, description string, defaultCode int, choices ...Choice) Definition {
	return Definition{
		Key:         key,
		Kind:        KindChoice,
		DisplayName: displayName,
		Description: description,
		Default:     defaultCode,
		Choices:     append([]Choice(nil), choices...),
		Visibility:  VisibilityVisible,
	}
}

// NewRange builds an integer option with inclusive bounds.
func NewRange(key, displayName, description string, start, end, def int) Definition {
	return Definition{
		Key:         key,
		Kind:        KindRange,
		DisplayName: displayName,
		Description: description,
		RangeStart:  start,
		RangeEnd:    end,
		Default:     def,
		Visibility:  VisibilityVisible,
	}
}

// IsToggle reports whether the definition is one of the boolean kinds.
func (d Definition) IsToggle() bool {
	return d.Kind == KindToggle || d.Kind == KindDefaultOnToggle
}

// Hidden reports whether the definition is excluded from player-facing
// output.
func (d Definition) Hidden() bool {
	return d.Visibility == VisibilityHidden
}

// Label returns the display name, deriving one from the key when the
// definition does not carry its own.
func (d Definition) Label() string {
	if strings.TrimSpace(d.DisplayName) != "" {
		return d.DisplayName
	}
	return DefaultLabeler(d.Key)
}

// DefaultValue returns the resting value a player file would resolve to when
// the option is left unspecified: bool for toggles, int for ranges and
// choices.
func (d Definition) DefaultValue() any {
	if d.IsToggle() {
		return d.DefaultOn
	}
	return d.Default
}

// ChoiceByLabel resolves a label to its code.
func (d Definition) ChoiceByLabel(label string) (Choice, bool) {
	for _, c := range d.Choices {
		if c.Label == label {
			return c, true
		}
	}
	return Choice{}, false
}

// ChoiceByCode resolves a code to its labelled choice.
func (d Definition) ChoiceByCode(code int) (Choice, bool) {
	for _, c := range d.Choices {
		if c.Code == code {
			return c, true
		}
	}
	return Choice{}, false
}

// Validate checks the kind-specific payload for internal consistency. The
// catalog registration path never calls this; it exists for contributors that
// assemble definitions programmatically.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Key) == "" {
		return fmt.Errorf("options: definition key is required")
	}
	switch d.Kind {
	case KindToggle, KindDefaultOnToggle:
		return nil
	case KindChoice:
		if len(d.Choices) == 0 {
			return fmt.Errorf("options: choice %q declares no choices", d.Key)
		}
		seen := make(map[string]struct{}, len(d.Choices))
		for _, c := range d.Choices {
			if strings.TrimSpace(c.Label) == "" {
				return fmt.Errorf("options: choice %q has an empty label", d.Key)
			}
			if _, dup := seen[c.Label]; dup {
				return fmt.Errorf("options: choice %q repeats label %q", d.Key, c.Label)
			}
			seen[c.Label] = struct{}{}
		}
		if _, ok := d.ChoiceByCode(d.Default); !ok {
			return fmt.Errorf("options: choice %q default code %d is not a declared choice", d.Key, d.Default)
		}
		return nil
	case KindRange:
		if d.RangeStart > d.RangeEnd {
			return fmt.Errorf("options: range %q bounds are inverted (%d > %d)", d.Key, d.RangeStart, d.RangeEnd)
		}
		if d.Default < d.RangeStart || d.Default > d.RangeEnd {
			return fmt.Errorf("options: range %q default %d is outside [%d, %d]", d.Key, d.Default, d.RangeStart, d.RangeEnd)
		}
		return nil
	default:
		return fmt.Errorf("options: definition %q has unknown kind %q", d.Key, d.Kind)
	}
}

// Group is a named collection of option keys used for presentation grouping.
type Group struct {
	Name string
	Keys []string
}
