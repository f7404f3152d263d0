package manual

import (
	"context"
	"strings"
	"testing"

	"github.com/blocktales/go-manual/pkg/render"
	"github.com/blocktales/go-manual/pkg/renderers/htmldoc"
	"github.com/blocktales/go-manual/pkg/renderers/yamltpl"
	"github.com/blocktales/go-manual/pkg/worlds/blocktales"
)

func TestStartup_BlockTales(t *testing.T) {
	world, err := blocktales.WorldData()
	if err != nil {
		t.Fatalf("world data: %v", err)
	}

	reg, err := Startup(context.Background(), world.HostOptions(), blocktales.NewContributor())
	if err != nil {
		t.Fatalf("startup: %v", err)
	}

	if !reg.Has("shopsanity") || !reg.Has("goal") {
		t.Fatal("final registry should hold contributed and host options")
	}
	if def, _ := reg.Get("co_op"); !def.Hidden() {
		t.Fatal("co_op should end up hidden")
	}

	values, err := Resolve(reg, []byte("shopsanity: true"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !values.Bool("shopsanity") {
		t.Fatal("supplied value lost")
	}
	if got := values.Int("cap"); got != 0 {
		t.Fatalf("cap default: want 0, got %d", got)
	}
}

func TestDefaultRenderers(t *testing.T) {
	registry, err := DefaultRenderers()
	if err != nil {
		t.Fatalf("default renderers: %v", err)
	}
	for _, name := range []string{yamltpl.RendererName, htmldoc.RendererName} {
		if !registry.Has(name) {
			t.Fatalf("expected renderer %q", name)
		}
	}
}

func TestGenerateTemplate(t *testing.T) {
	world, err := blocktales.WorldData()
	if err != nil {
		t.Fatalf("world data: %v", err)
	}

	out, err := GenerateTemplate(
		context.Background(),
		yamltpl.RendererName,
		render.RenderOptions{Game: world.Game},
		world.HostOptions(),
		blocktales.NewContributor(),
	)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, "total_characters_to_win_with: 50") {
		t.Fatalf("template missing contributed option:\n%s", text)
	}
	if strings.Contains(text, "shopsanity_currency") {
		t.Fatalf("hidden host option leaked:\n%s", text)
	}

	if _, err := GenerateTemplate(context.Background(), "ghost", render.RenderOptions{}, nil); err == nil {
		t.Fatal("expected unknown renderer error")
	}
}
