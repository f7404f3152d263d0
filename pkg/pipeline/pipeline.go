// Package pipeline coordinates the option-definition lifecycle the host runs
// at generation start-up: contributor registration, host defaults merge,
// post-definition mutation, and group assembly. Hooks run sequentially, once
// each, in a fixed order; there is no concurrent access to the registry.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blocktales/go-manual/pkg/hooks"
	"github.com/blocktales/go-manual/pkg/options"
)

// Result is the finalized output of a pipeline run.
type Result struct {
	Options *options.Registry
	Groups  []options.Group
}

// Pipeline threads one registry through the ordered hook calls. Construct it
// with New and run it once; the registry it produces is the host's final
// option set.
type Pipeline struct {
	contributors []hooks.Contributor
	hostDefaults []options.Definition
	groups       map[string][]string
	logger       *slog.Logger
}

// Option customises the pipeline configuration.
type Option func(*Pipeline)

// WithContributors appends world modules whose hooks run in registration
// order.
func WithContributors(contributors ...hooks.Contributor) Option {
	return func(p *Pipeline) {
		for _, c := range contributors {
			if c == nil {
				continue
			}
			p.contributors = append(p.contributors, c)
		}
	}
}

// WithHostDefaults supplies the host-owned definitions merged after the
// contributor registration pass. Contributed options win on overlap.
func WithHostDefaults(defs ...options.Definition) Option {
	return func(p *Pipeline) {
		p.hostDefaults = append(p.hostDefaults, defs...)
	}
}

// WithGroups seeds the named option groupings handed to the group hooks.
func WithGroups(groups map[string][]string) Option {
	return func(p *Pipeline) {
		if len(groups) == 0 {
			return
		}
		if p.groups == nil {
			p.groups = make(map[string][]string, len(groups))
		}
		for name, keys := range groups {
			p.groups[name] = append([]string(nil), keys...)
		}
	}
}

// WithLogger overrides the logger used for hook tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New constructs a Pipeline applying any provided options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{logger: slog.Default()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Run executes the hook sequence and returns the finalized option set and
// groups. Any hook error aborts the run, wrapped with the contributor name so
// the host's start-up error path can report the offender.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	reg := options.NewRegistry()

	for _, c := range p.contributors {
		p.logger.Debug("running before_options_defined", "contributor", c.Name())
		if err := c.BeforeOptionsDefined(reg); err != nil {
			return Result{}, fmt.Errorf("pipeline: contributor %q before options defined: %w", c.Name(), err)
		}
	}

	// Host defaults fill in only what no contributor claimed.
	for _, def := range p.hostDefaults {
		reg.SetDefault(def)
	}
	p.logger.Debug("host defaults merged", "options", reg.Len())

	for _, c := range p.contributors {
		p.logger.Debug("running after_options_defined", "contributor", c.Name())
		if err := c.AfterOptionsDefined(reg); err != nil {
			return Result{}, fmt.Errorf("pipeline: contributor %q after options defined: %w", c.Name(), err)
		}
	}

	groups, err := p.runGroupHooks(reg)
	if err != nil {
		return Result{}, err
	}

	return Result{Options: reg, Groups: groups}, nil
}

func (p *Pipeline) runGroupHooks(reg *options.Registry) ([]options.Group, error) {
	byName := make(map[string][]string, len(p.groups))
	for name, keys := range p.groups {
		byName[name] = append([]string(nil), keys...)
	}

	var err error
	for _, c := range p.contributors {
		byName, err = c.BeforeOptionGroupsCreated(byName)
		if err != nil {
			return nil, fmt.Errorf("pipeline: contributor %q before option groups created: %w", c.Name(), err)
		}
	}

	groups := materializeGroups(reg, byName)

	for _, c := range p.contributors {
		groups, err = c.AfterOptionGroupsCreated(groups)
		if err != nil {
			return nil, fmt.Errorf("pipeline: contributor %q after option groups created: %w", c.Name(), err)
		}
	}
	return groups, nil
}

// materializeGroups turns the named key lists into Group values, ordered by
// first appearance of each group's keys in the registry so output stays
// deterministic. Keys referencing unregistered options are dropped; grouping
// is presentation only and must not fail the run.
func materializeGroups(reg *options.Registry, byName map[string][]string) []options.Group {
	if len(byName) == 0 {
		return nil
	}

	firstKey := make(map[string]int, reg.Len())
	for idx, key := range reg.Keys() {
		firstKey[key] = idx
	}

	groups := make([]options.Group, 0, len(byName))
	for name, keys := range byName {
		kept := make([]string, 0, len(keys))
		for _, key := range keys {
			if _, ok := firstKey[key]; ok {
				kept = append(kept, key)
			}
		}
		if len(kept) == 0 {
			continue
		}
		groups = append(groups, options.Group{Name: name, Keys: kept})
	}

	rank := func(g options.Group) int {
		best := reg.Len()
		for _, key := range g.Keys {
			if idx := firstKey[key]; idx < best {
				best = idx
			}
		}
		return best
	}
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && rank(groups[j]) < rank(groups[j-1]); j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
	return groups
}
