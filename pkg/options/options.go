package options

import internalmodel "github.com/blocktales/go-manual/internal/model"

// Kind re-exports the internal option kind enumeration.
type Kind = internalmodel.Kind

const (
	KindToggle          = internalmodel.KindToggle
	KindDefaultOnToggle = internalmodel.KindDefaultOnToggle
	KindChoice          = internalmodel.KindChoice
	KindRange           = internalmodel.KindRange
)

// Visibility re-exports the presentation flag.
type Visibility = internalmodel.Visibility

const (
	VisibilityVisible = internalmodel.VisibilityVisible
	VisibilityHidden  = internalmodel.VisibilityHidden
)

type Choice = internalmodel.Choice
type Definition = internalmodel.Definition
type Group = internalmodel.Group
type Registry = internalmodel.Registry

// ErrNotRegistered is wrapped by every registry lookup failure.
var ErrNotRegistered = internalmodel.ErrNotRegistered

// NewRegistry creates an empty option registry.
func NewRegistry() *Registry { return internalmodel.NewRegistry() }

// NewToggle builds a boolean option that defaults to off.
func NewToggle(key, displayName, description string) Definition {
	return internalmodel.NewToggle(key, displayName, description)
}

// NewDefaultOnToggle builds a boolean option that defaults to on.
func NewDefaultOnToggle(key, displayName, description string) Definition {
	return internalmodel.NewDefaultOnToggle(key, displayName, description)
}

// NewChoice builds an enumerated option.
func NewChoice(key, displayName, description string, defaultCode int, choices ...Choice) Definition {
	return internalmodel.NewChoice(key, displayName, description, defaultCode, choices...)
}

// NewRange builds an integer option with inclusive bounds.
func NewRange(key, displayName, description string, start, end, def int) Definition {
	return internalmodel.NewRange(key, displayName, description, start, end, def)
}

// DefaultLabeler converts an option key into a display name.
func DefaultLabeler(key string) string { return internalmodel.DefaultLabeler(key) }
