// Package hooks declares the extension points a world module implements to
// contribute options to the host's generation start-up. The host calls the
// four hooks sequentially, once each, in a fixed order: BeforeOptionsDefined,
// then its own defaults merge, then AfterOptionsDefined, then the two group
// hooks. The registry is passed by reference into each hook; there is no
// ambient state.
package hooks

import "github.com/blocktales/go-manual/pkg/options"

// Contributor is implemented by world modules that inject options into the
// shared registry and adjust the final option set once the host's own
// defaults exist.
type Contributor interface {
	// Name identifies the contributor in pipeline errors and logs.
	Name() string

	// BeforeOptionsDefined injects the contributor's options into the
	// shared registry before the host merges its own defaults. Writes
	// overwrite prior bindings for the same key.
	BeforeOptionsDefined(reg *options.Registry) error

	// AfterOptionsDefined mutates the final option set in place, typically
	// to flip visibility on options the host generated. Referencing a key
	// absent from the registry is a fatal lookup failure.
	AfterOptionsDefined(reg *options.Registry) error

	// BeforeOptionGroupsCreated may reshape the named groupings before the
	// host materializes them.
	BeforeOptionGroupsCreated(groups map[string][]string) (map[string][]string, error)

	// AfterOptionGroupsCreated may reshape the materialized group list.
	AfterOptionGroupsCreated(groups []options.Group) ([]options.Group, error)
}

// Base is an embeddable no-op Contributor. Every hook is an identity
// passthrough, so world modules override only what they use.
type Base struct{}

func (Base) Name() string { return "" }

func (Base) BeforeOptionsDefined(*options.Registry) error { return nil }

func (Base) AfterOptionsDefined(*options.Registry) error { return nil }

func (Base) BeforeOptionGroupsCreated(groups map[string][]string) (map[string][]string, error) {
	return groups, nil
}

func (Base) AfterOptionGroupsCreated(groups []options.Group) ([]options.Group, error) {
	return groups, nil
}
