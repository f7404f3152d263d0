package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_SetOverwrites(t *testing.T) {
	reg := NewRegistry()
	reg.Set(NewToggle("shopsanity", "Shopsanity", "original"))
	reg.Set(NewToggle("chatsanity", "Chatsanity", ""))
	reg.Set(NewDefaultOnToggle("shopsanity", "Shopsanity", "replacement"))

	def, ok := reg.Get("shopsanity")
	if !ok {
		t.Fatal("expected shopsanity to be bound")
	}
	if def.Kind != KindDefaultOnToggle || def.Description != "replacement" {
		t.Fatalf("later write should win, got %+v", def)
	}

	// Overwrite keeps the original insertion position.
	if diff := cmp.Diff([]string{"shopsanity", "chatsanity"}, reg.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_SetDefaultKeepsExisting(t *testing.T) {
	reg := NewRegistry()
	reg.Set(NewToggle("goal", "Contributed Goal", ""))
	reg.SetDefault(NewChoice("goal", "Host Goal", "", 0, Choice{Label: "chapter_4", Code: 0}))
	reg.SetDefault(NewToggle("co_op", "Co Op", ""))

	def, _ := reg.Get("goal")
	if def.DisplayName != "Contributed Goal" {
		t.Fatalf("SetDefault must not overwrite, got %q", def.DisplayName)
	}
	if !reg.Has("co_op") {
		t.Fatal("SetDefault should bind absent keys")
	}
}

func TestRegistry_SetVisibility(t *testing.T) {
	reg := NewRegistry()
	reg.Set(NewToggle("co_op", "Co Op", ""))

	if err := reg.SetVisibility("co_op", VisibilityHidden); err != nil {
		t.Fatalf("set visibility: %v", err)
	}
	def, _ := reg.Get("co_op")
	if !def.Hidden() {
		t.Fatal("expected co_op to be hidden")
	}

	err := reg.SetVisibility("bux_shop", VisibilityHidden)
	if err == nil {
		t.Fatal("expected error for missing key")
	}
	if !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}

func TestRegistry_Definitions(t *testing.T) {
	reg := NewRegistry()
	reg.Set(NewToggle("a", "", ""))
	reg.Set(NewToggle("b", "", ""))

	defs := reg.Definitions()
	if len(defs) != 2 || defs[0].Key != "a" || defs[1].Key != "b" {
		t.Fatalf("definitions out of order: %+v", defs)
	}
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	reg := NewRegistry()
	reg.Set(NewToggle("a", "", ""))

	clone := reg.Clone()
	clone.Set(NewToggle("b", "", ""))
	if err := clone.SetVisibility("a", VisibilityHidden); err != nil {
		t.Fatalf("set visibility on clone: %v", err)
	}

	if reg.Has("b") {
		t.Fatal("clone write leaked into original")
	}
	if def, _ := reg.Get("a"); def.Hidden() {
		t.Fatal("clone visibility change leaked into original")
	}
}
