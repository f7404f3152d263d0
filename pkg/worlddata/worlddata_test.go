package worlddata

import (
	"strings"
	"testing"

	"github.com/blocktales/go-manual/pkg/options"
)

const sampleWorld = `
game: Block Tales
goal_default: chapter_4
goals:
  - label: chapter_1
    code: 0
  - label: chapter_4
    code: 3
categories:
  - key: co_op
    display_name: Co-Op
  - key: chapter1
filler_traps:
  start: 0
  end: 100
  default: 20
`

func TestLoad(t *testing.T) {
	w, err := Load([]byte(sampleWorld))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if w.Game != "Block Tales" {
		t.Fatalf("game: got %q", w.Game)
	}
	if len(w.Goals) != 2 || len(w.Categories) != 2 {
		t.Fatalf("unexpected shape: %+v", w)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "missing game",
			doc:  "goals: [{label: a, code: 0}]",
			want: "game name is required",
		},
		{
			name: "no goals",
			doc:  "game: X",
			want: "at least one goal",
		},
		{
			name: "duplicate goal label",
			doc:  "game: X\ngoals: [{label: a, code: 0}, {label: a, code: 1}]",
			want: "duplicate goal label",
		},
		{
			name: "unknown goal default",
			doc:  "game: X\ngoal_default: b\ngoals: [{label: a, code: 0}]",
			want: "not a declared goal",
		},
		{
			name: "duplicate category",
			doc:  "game: X\ngoals: [{label: a, code: 0}]\ncategories: [{key: c}, {key: c}]",
			want: "duplicate category",
		},
		{
			name: "trap default out of bounds",
			doc:  "game: X\ngoals: [{label: a, code: 0}]\nfiller_traps: {start: 0, end: 10, default: 20}",
			want: "outside",
		},
		{
			name: "not yaml",
			doc:  "game: [unterminated",
			want: "parse",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestHostOptions(t *testing.T) {
	w, err := Load([]byte(sampleWorld))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	reg := options.NewRegistry()
	for _, def := range w.HostOptions() {
		reg.Set(def)
	}

	goal, ok := reg.Get("goal")
	if !ok {
		t.Fatal("expected derived goal option")
	}
	if goal.Kind != options.KindChoice {
		t.Fatalf("goal kind: got %q", goal.Kind)
	}
	if goal.Default != 3 {
		t.Fatalf("goal default should resolve chapter_4 code, got %d", goal.Default)
	}

	coop, ok := reg.Get("co_op")
	if !ok || coop.Kind != options.KindDefaultOnToggle {
		t.Fatalf("expected co_op default-on toggle, got %+v (ok=%v)", coop, ok)
	}
	if coop.DisplayName != "Co-Op" {
		t.Fatalf("category display name not carried: %q", coop.DisplayName)
	}

	traps, ok := reg.Get("filler_traps")
	if !ok || traps.RangeStart != 0 || traps.RangeEnd != 100 || traps.Default != 20 {
		t.Fatalf("filler traps bounds wrong: %+v (ok=%v)", traps, ok)
	}
}

func TestHostOptions_GoalDefaultFallsBackToFirst(t *testing.T) {
	w, err := Load([]byte("game: X\ngoals: [{label: a, code: 7}, {label: b, code: 8}]"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	goal := w.HostOptions()[0]
	if goal.Default != 7 {
		t.Fatalf("expected first goal code, got %d", goal.Default)
	}
}
