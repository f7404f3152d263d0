// Package visibility post-processes the final option set, hiding options from
// player-facing presentation once every contributor and the host have merged
// their definitions.
package visibility

import (
	"fmt"

	"github.com/blocktales/go-manual/pkg/options"
)

// Hide marks each key hidden, in order. Every key must already exist in the
// registry; a miss aborts with an error naming the key. Keys processed before
// the miss keep their new flag; the update is eager, not transactional.
func Hide(reg *options.Registry, keys ...string) error {
	return apply(reg, options.VisibilityHidden, keys)
}

// Show marks each key visible, with the same sequential semantics as Hide.
func Show(reg *options.Registry, keys ...string) error {
	return apply(reg, options.VisibilityVisible, keys)
}

func apply(reg *options.Registry, v options.Visibility, keys []string) error {
	if reg == nil {
		return fmt.Errorf("visibility: registry is required")
	}
	for _, key := range keys {
		if err := reg.SetVisibility(key, v); err != nil {
			return fmt.Errorf("visibility: %w", err)
		}
	}
	return nil
}
