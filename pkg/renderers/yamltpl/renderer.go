// Package yamltpl renders the player options template: a commented YAML
// document players copy and edit before generation. Hidden options are
// omitted; every visible option appears with its documentation and its
// default (or prefilled) value.
package yamltpl

import (
	"context"
	"embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/blocktales/go-manual/pkg/options"
	"github.com/blocktales/go-manual/pkg/render"
	"github.com/blocktales/go-manual/pkg/render/template/gotemplate"
)

//go:embed templates
var templatesFS embed.FS

// RendererName identifies this renderer in the render registry.
const RendererName = "yaml-template"

// Renderer produces the template YAML via the embedded pongo2 template.
type Renderer struct {
	engine *gotemplate.Engine
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer with the embedded template set.
func New() (*Renderer, error) {
	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		return nil, fmt.Errorf("yamltpl: init engine: %w", err)
	}
	return &Renderer{engine: engine}, nil
}

func (*Renderer) Name() string { return RendererName }

// Render produces the template document for every visible option, in
// registry order.
func (r *Renderer) Render(ctx context.Context, reg *options.Registry, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, fmt.Errorf("yamltpl: registry is required")
	}

	views := make([]map[string]any, 0, reg.Len())
	for _, def := range reg.Definitions() {
		if def.Hidden() && !opts.IncludeHidden {
			continue
		}
		views = append(views, optionView(def, opts.Values))
	}

	game := opts.Game
	if game == "" {
		game = "Manual"
	}

	out, err := r.engine.RenderTemplate("templates/options.yaml", map[string]any{
		"game": game,
		"opts": views,
	})
	if err != nil {
		return nil, fmt.Errorf("yamltpl: render: %w", err)
	}
	return []byte(strings.TrimLeft(out, "\n")), nil
}

func optionView(def options.Definition, values map[string]any) map[string]any {
	var comments []string
	for _, line := range strings.Split(def.Description, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}
		comments = append(comments, line)
	}

	return map[string]any{
		"key":          def.Key,
		"display_name": def.Label(),
		"comments":     comments,
		"hint":         hintFor(def),
		"value":        valueFor(def, values),
	}
}

// hintFor summarizes the accepted values for the option.
func hintFor(def options.Definition) string {
	switch def.Kind {
	case options.KindRange:
		return fmt.Sprintf("Range: %d to %d", def.RangeStart, def.RangeEnd)
	case options.KindChoice:
		labels := make([]string, 0, len(def.Choices))
		for _, c := range def.Choices {
			labels = append(labels, c.Label)
		}
		return "Choices: " + strings.Join(labels, ", ")
	default:
		return "Choices: true, false"
	}
}

// valueFor renders the option's resting value, or the player's resolved value
// when one was supplied.
func valueFor(def options.Definition, values map[string]any) string {
	raw := def.DefaultValue()
	if values != nil {
		if v, ok := values[def.Key]; ok {
			raw = v
		}
	}

	if def.Kind == options.KindChoice {
		if code, ok := raw.(int); ok {
			if choice, found := def.ChoiceByCode(code); found {
				return choice.Label
			}
		}
	}

	switch v := raw.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
