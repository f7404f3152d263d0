package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestEngine_RenderTemplate(t *testing.T) {
	files := fstest.MapFS{
		"greeting.tpl": &fstest.MapFile{Data: []byte("Hello {{ name }}!")},
	}

	engine, err := New(WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("greeting", map[string]any{"name": "Block Tales"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Block Tales!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.Render("{% for n in items %}{{ n }},{% endfor %}", map[string]any{
		"items": []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "a,b," {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.RenderTemplate("ghost", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestEngine_CustomFilter(t *testing.T) {
	files := fstest.MapFS{
		"shout.tpl": &fstest.MapFile{Data: []byte("{{ word|shout }}")},
	}

	engine, err := New(
		WithFS(files),
		WithFilter("shout", func(input any, _ any) (any, error) {
			s, _ := input.(string)
			return strings.ToUpper(s) + "!", nil
		}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("shout", map[string]any{"word": "checks"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "CHECKS!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error when no template source configured")
	}
}
