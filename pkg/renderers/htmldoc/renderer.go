// Package htmldoc renders a standalone HTML page documenting every visible
// option: its key, kind, accepted values, and player-facing description.
// Descriptions pass through a bluemonday policy so world-authored text cannot
// inject markup, and an optional go-theme selection styles the page through
// CSS variables.
package htmldoc

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/blocktales/go-manual/pkg/options"
	"github.com/blocktales/go-manual/pkg/render"
	"github.com/blocktales/go-manual/pkg/render/template/gotemplate"
)

//go:embed templates
var templatesFS embed.FS

// RendererName identifies this renderer in the render registry.
const RendererName = "html-docs"

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// descriptionSanitizer allows the basic inline markup world authors use in
// option descriptions and strips everything else.
func descriptionSanitizer() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "code", "br")
		descriptionPolicy = policy
	})
	return descriptionPolicy
}

// Renderer produces the documentation page via the embedded template.
type Renderer struct {
	engine *gotemplate.Engine
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer with the embedded template set.
func New() (*Renderer, error) {
	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		return nil, fmt.Errorf("htmldoc: init engine: %w", err)
	}
	return &Renderer{engine: engine}, nil
}

func (*Renderer) Name() string { return RendererName }

// Render produces the HTML page for every visible option, in registry order.
func (r *Renderer) Render(ctx context.Context, reg *options.Registry, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("htmldoc: registry is required")
	}

	views := make([]map[string]any, 0, reg.Len())
	for _, def := range reg.Definitions() {
		if def.Hidden() && !opts.IncludeHidden {
			continue
		}
		views = append(views, map[string]any{
			"key":          def.Key,
			"display_name": def.Label(),
			"meta":         metaFor(def),
			"description":  sanitizeDescription(def.Description),
		})
	}

	game := opts.Game
	if game == "" {
		game = "Manual"
	}

	out, err := r.engine.RenderTemplate("templates/options.html", map[string]any{
		"game":    game,
		"opts":    views,
		"cssvars": cssVarViews(opts.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("htmldoc: render: %w", err)
	}
	return []byte(out), nil
}

func metaFor(def options.Definition) string {
	switch def.Kind {
	case options.KindRange:
		return fmt.Sprintf("Range %d to %d, default %d", def.RangeStart, def.RangeEnd, def.Default)
	case options.KindChoice:
		labels := make([]string, 0, len(def.Choices))
		defaultLabel := ""
		for _, c := range def.Choices {
			labels = append(labels, c.Label)
			if c.Code == def.Default {
				defaultLabel = c.Label
			}
		}
		return fmt.Sprintf("Choice of %s, default %s", strings.Join(labels, ", "), defaultLabel)
	default:
		return fmt.Sprintf("Toggle, default %t", def.DefaultOn)
	}
}

func sanitizeDescription(raw string) string {
	cleaned := descriptionSanitizer().Sanitize(raw)
	return strings.ReplaceAll(strings.TrimSpace(cleaned), "\n", "<br>\n")
}

func cssVarViews(cfg *render.ThemeConfig) []map[string]any {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return nil
	}
	names := make([]string, 0, len(cfg.CSSVars))
	for name := range cfg.CSSVars {
		names = append(names, name)
	}
	sort.Strings(names)

	views := make([]map[string]any, 0, len(names))
	for _, name := range names {
		views = append(views, map[string]any{"name": name, "value": cfg.CSSVars[name]})
	}
	return views
}

// ResolveTheme selects a theme/variant and flattens its tokens into the CSS
// variable map the page consumes. Variant tokens override the base manifest.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*render.ThemeConfig, error) {
	if selector == nil {
		return nil, fmt.Errorf("htmldoc: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("htmldoc: theme %q has no manifest", name)
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if v, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range v.Tokens {
			tokens[key] = value
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &render.ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
		Tokens:  tokens,
		CSSVars: cssVars,
	}, nil
}
