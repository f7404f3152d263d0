// Package blocktales is the Block Tales world module: the option catalog it
// contributes to the host registry, the visibility overrides it applies to
// the host's auto-generated options, and the world data the host derives
// those options from.
package blocktales

import (
	_ "embed"

	"github.com/blocktales/go-manual/pkg/hooks"
	"github.com/blocktales/go-manual/pkg/options"
	"github.com/blocktales/go-manual/pkg/visibility"
	"github.com/blocktales/go-manual/pkg/worlddata"
)

//go:embed worlddata.yaml
var worldDataYAML []byte

// hiddenKeys are host-generated options (category toggles and goal helpers)
// that players never set directly, so they are stripped from player-facing
// presentation. Every one of them must exist in the final registry; a miss
// aborts generation start-up.
var hiddenKeys = []string{
	"co_op",
	"bux_shop",
	"shopsanity_currency",
	"pure_soul",
	"dark_soul",
	"pre_prologue",
	"prologue",
	"chapter1",
	"chapter2",
	"chapter3",
	"chapter4",
}

// HiddenKeys returns the keys this world hides after the host's defaults
// merge.
func HiddenKeys() []string {
	return append([]string(nil), hiddenKeys...)
}

// WorldData parses the embedded Block Tales world data.
func WorldData() (worlddata.World, error) {
	return worlddata.Load(worldDataYAML)
}

// Contributor implements the four lifecycle hooks for Block Tales.
type Contributor struct {
	hooks.Base
}

// NewContributor returns the Block Tales world contributor.
func NewContributor() *Contributor {
	return &Contributor{}
}

func (*Contributor) Name() string { return "blocktales" }

// BeforeOptionsDefined injects the Block Tales catalog into the shared
// registry before the host finalizes its own defaults.
func (*Contributor) BeforeOptionsDefined(reg *options.Registry) error {
	Register(reg)
	return nil
}

// AfterOptionsDefined hides the host-generated helper options. The hides are
// applied in order; if a key is missing the earlier hides stick and the error
// propagates to the host's start-up error path.
func (*Contributor) AfterOptionsDefined(reg *options.Registry) error {
	return visibility.Hide(reg, hiddenKeys...)
}
