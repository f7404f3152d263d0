// Package manual is the facade for the option layer of a Manual-style game
// randomizer: world modules contribute typed option definitions through
// lifecycle hooks, the host merges its own derived defaults, and the
// finalized option set feeds value resolution and player-facing rendering.
package manual

import (
	"context"
	"fmt"

	"github.com/blocktales/go-manual/pkg/hooks"
	"github.com/blocktales/go-manual/pkg/options"
	"github.com/blocktales/go-manual/pkg/pipeline"
	"github.com/blocktales/go-manual/pkg/render"
	"github.com/blocktales/go-manual/pkg/renderers/htmldoc"
	"github.com/blocktales/go-manual/pkg/renderers/yamltpl"
	"github.com/blocktales/go-manual/pkg/resolve"
)

// Contributor aliases the hook contract world modules implement.
type Contributor = hooks.Contributor

// Values aliases the resolved option values map.
type Values = resolve.Values

// NewPipeline exposes the hook pipeline constructor from the top-level
// module.
func NewPipeline(opts ...pipeline.Option) *pipeline.Pipeline {
	return pipeline.New(opts...)
}

// DefaultRenderers returns a registry with the built-in renderers wired.
func DefaultRenderers() (*render.Registry, error) {
	registry := render.NewRegistry()

	tpl, err := yamltpl.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(tpl); err != nil {
		return nil, err
	}

	docs, err := htmldoc.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(docs); err != nil {
		return nil, err
	}
	return registry, nil
}

// Startup runs the full option-definition lifecycle for the supplied
// contributors and host defaults, returning the finalized option set.
func Startup(ctx context.Context, hostDefaults []options.Definition, contributors ...Contributor) (*options.Registry, error) {
	res, err := pipeline.New(
		pipeline.WithContributors(contributors...),
		pipeline.WithHostDefaults(hostDefaults...),
	).Run(ctx)
	if err != nil {
		return nil, err
	}
	return res.Options, nil
}

// GenerateTemplate runs start-up and renders the named renderer's output for
// the finalized option set.
func GenerateTemplate(ctx context.Context, rendererName string, opts render.RenderOptions, hostDefaults []options.Definition, contributors ...Contributor) ([]byte, error) {
	reg, err := Startup(ctx, hostDefaults, contributors...)
	if err != nil {
		return nil, err
	}

	renderers, err := DefaultRenderers()
	if err != nil {
		return nil, err
	}
	renderer, err := renderers.Get(rendererName)
	if err != nil {
		return nil, fmt.Errorf("manual: %w", err)
	}
	return renderer.Render(ctx, reg, opts)
}

// Resolve validates a player option document against the finalized option
// set, filling defaults for anything unspecified.
func Resolve(reg *options.Registry, playerYAML []byte) (Values, error) {
	return resolve.Resolve(reg, playerYAML)
}
