package yamltpl

import (
	"context"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/blocktales/go-manual/pkg/options"
	"github.com/blocktales/go-manual/pkg/render"
	"github.com/blocktales/go-manual/pkg/visibility"
	"github.com/blocktales/go-manual/pkg/worlds/blocktales"
)

func renderCatalog(t *testing.T, opts render.RenderOptions) string {
	t.Helper()

	reg := options.NewRegistry()
	blocktales.Register(reg)

	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), reg, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRender_ProducesValidYAML(t *testing.T) {
	out := renderCatalog(t, render.RenderOptions{Game: "Block Tales"})

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not parseable YAML: %v\n%s", err, out)
	}

	if got := doc["total_characters_to_win_with"]; got != 50 {
		t.Fatalf("range default: want 50, got %v", got)
	}
	if got := doc["cap"]; got != "i_agree" {
		t.Fatalf("choice default should render its label, got %v", got)
	}
	if got := doc["fishsanity"]; got != true {
		t.Fatalf("default-on toggle: want true, got %v", got)
	}
	if got := doc["solo_mode"]; got != false {
		t.Fatalf("toggle: want false, got %v", got)
	}
}

func TestRender_DocumentsBoundsAndChoices(t *testing.T) {
	out := renderCatalog(t, render.RenderOptions{Game: "Block Tales"})

	if !strings.Contains(out, "# Range: 10 to 50") {
		t.Fatalf("range hint missing:\n%s", out)
	}
	if !strings.Contains(out, "# Choices: i_agree, i_disagree") {
		t.Fatalf("choice hint missing:\n%s", out)
	}
	if !strings.Contains(out, "# Block Tales Options") {
		t.Fatalf("game heading missing:\n%s", out)
	}
	if !strings.Contains(out, "# Adds each floor of the Pit as Checks.") {
		t.Fatalf("description comments missing:\n%s", out)
	}
}

func TestRender_SkipsHiddenOptions(t *testing.T) {
	reg := options.NewRegistry()
	blocktales.Register(reg)
	reg.Set(options.NewDefaultOnToggle("co_op", "Co-Op", ""))
	if err := visibility.Hide(reg, "co_op"); err != nil {
		t.Fatalf("hide: %v", err)
	}

	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), reg, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "co_op") {
		t.Fatalf("hidden option leaked into template:\n%s", out)
	}

	withHidden, err := renderer.Render(context.Background(), reg, render.RenderOptions{IncludeHidden: true})
	if err != nil {
		t.Fatalf("render with hidden: %v", err)
	}
	if !strings.Contains(string(withHidden), "co_op") {
		t.Fatal("IncludeHidden should surface hidden options")
	}
}

func TestRender_PrefillsResolvedValues(t *testing.T) {
	out := renderCatalog(t, render.RenderOptions{
		Game: "Block Tales",
		Values: map[string]any{
			"cap":                          1,
			"total_characters_to_win_with": 25,
			"chatsanity":                   true,
		},
	})

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc["cap"] != "i_disagree" {
		t.Fatalf("prefilled choice: want i_disagree, got %v", doc["cap"])
	}
	if doc["total_characters_to_win_with"] != 25 {
		t.Fatalf("prefilled range: want 25, got %v", doc["total_characters_to_win_with"])
	}
	if doc["chatsanity"] != true {
		t.Fatalf("prefilled toggle: want true, got %v", doc["chatsanity"])
	}
}
