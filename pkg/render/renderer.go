// Package render defines the renderer contract for player-facing option
// output and a name-keyed registry of renderer implementations. Built-in
// renderers live under pkg/renderers.
package render

import (
	"context"

	"github.com/blocktales/go-manual/pkg/options"
)

// ThemeConfig carries resolved theme data into renderers that produce styled
// output. CSSVars is derived from the selected theme's tokens.
type ThemeConfig struct {
	Theme   string
	Variant string
	Tokens  map[string]string
	CSSVars map[string]string
}

// RenderOptions are per-request inputs: resolved player values to prefill
// with and an optional theme for styled renderers.
type RenderOptions struct {
	// Game names the world being rendered, used in headings.
	Game string

	// Values prefills options with resolved player values instead of the
	// declared defaults.
	Values map[string]any

	// IncludeHidden renders options flagged hidden as well. Player-facing
	// output leaves this false.
	IncludeHidden bool

	Theme *ThemeConfig
}

// Renderer produces player-facing output from a finalized option registry.
type Renderer interface {
	Name() string
	Render(ctx context.Context, reg *options.Registry, opts RenderOptions) ([]byte, error)
}
