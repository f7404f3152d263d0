package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	manual "github.com/blocktales/go-manual"
	"github.com/blocktales/go-manual/pkg/render"
	"github.com/blocktales/go-manual/pkg/renderers/tui"
	"github.com/blocktales/go-manual/pkg/renderers/yamltpl"
	"github.com/blocktales/go-manual/pkg/worlds/blocktales"
)

func main() {
	renderer := flag.String("renderer", yamltpl.RendererName, "renderer to use (yaml-template, html-docs)")
	output := flag.String("output", "", "output file (stdout if empty)")
	player := flag.String("player", "", "player options file to resolve before rendering")
	interactive := flag.Bool("interactive", false, "fill options interactively instead of reading a player file")
	includeHidden := flag.Bool("include-hidden", false, "render options hidden from players as well")
	flag.Parse()

	ctx := context.Background()

	world, err := blocktales.WorldData()
	if err != nil {
		log.Fatalf("Failed to load world data: %v", err)
	}

	reg, err := manual.Startup(ctx, world.HostOptions(), blocktales.NewContributor())
	if err != nil {
		log.Fatalf("Failed to build option set: %v", err)
	}

	var values manual.Values
	switch {
	case *interactive:
		session, err := tui.NewSession(tui.NewSurveyDriver())
		if err != nil {
			log.Fatalf("Failed to start prompt session: %v", err)
		}
		values, err = session.Fill(ctx, reg)
		if err != nil {
			log.Fatalf("Prompt session failed: %v", err)
		}
	case *player != "":
		doc, err := os.ReadFile(*player)
		if err != nil {
			log.Fatalf("Failed to read player options: %v", err)
		}
		values, err = manual.Resolve(reg, doc)
		if err != nil {
			log.Fatalf("Invalid player options: %v", err)
		}
	}

	if *renderer == "" && values != nil {
		// Resolve-only mode: print the resolved values.
		if err := writeYAML(*output, values); err != nil {
			log.Fatalf("Failed to write resolved values: %v", err)
		}
		return
	}

	renderers, err := manual.DefaultRenderers()
	if err != nil {
		log.Fatalf("Failed to initialise renderers: %v", err)
	}
	r, err := renderers.Get(*renderer)
	if err != nil {
		log.Fatalf("Unknown renderer %q (have: %v)", *renderer, renderers.List())
	}

	out, err := r.Render(ctx, reg, render.RenderOptions{
		Game:          world.Game,
		Values:        values,
		IncludeHidden: *includeHidden,
	})
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(string(out))
	}
}

func writeYAML(path string, values manual.Values) error {
	doc := make(map[string]any, len(values))
	for _, key := range values.Keys() {
		doc[key] = values[key]
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	if path != "" {
		return os.WriteFile(path, out, 0o644)
	}
	fmt.Print(string(out))
	return nil
}
