// Package resolve turns a player's option file into concrete generation
// values. The contributor side of the system only declares kinds, bounds, and
// choices; enforcement of those declarations against supplied values is a
// host responsibility and lives here. Values that violate their declaration
// are rejected, not clamped.
package resolve

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/blocktales/go-manual/pkg/options"
)

// Values maps option keys to resolved generation values: bool for toggles,
// int for ranges and choices.
type Values map[string]any

// Bool returns the resolved toggle state for key.
func (v Values) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

// Int returns the resolved integer for key.
func (v Values) Int(key string) int {
	n, _ := v[key].(int)
	return n
}

// Keys returns the resolved keys in sorted order.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for key := range v {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Resolve decodes a player option document and validates every supplied value
// against its definition. Options missing from the document resolve to their
// declared defaults. Unknown keys and out-of-bounds values are errors naming
// the offending option.
func Resolve(reg *options.Registry, playerYAML []byte) (Values, error) {
	if reg == nil {
		return nil, fmt.Errorf("resolve: registry is required")
	}

	supplied := make(map[string]any)
	if len(playerYAML) > 0 {
		if err := yaml.Unmarshal(playerYAML, &supplied); err != nil {
			return nil, fmt.Errorf("resolve: parse player options: %w", err)
		}
	}

	for key := range supplied {
		if !reg.Has(key) {
			return nil, fmt.Errorf("resolve: option %q: %w", key, options.ErrNotRegistered)
		}
	}

	resolved := make(Values, reg.Len())
	for _, def := range reg.Definitions() {
		raw, ok := supplied[def.Key]
		if !ok {
			resolved[def.Key] = def.DefaultValue()
			continue
		}
		value, err := resolveValue(def, raw)
		if err != nil {
			return nil, err
		}
		resolved[def.Key] = value
	}
	return resolved, nil
}

func resolveValue(def options.Definition, raw any) (any, error) {
	switch def.Kind {
	case options.KindToggle, options.KindDefaultOnToggle:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("resolve: option %q wants true or false, got %v", def.Key, raw)
		}
		return b, nil
	case options.KindChoice:
		return resolveChoice(def, raw)
	case options.KindRange:
		n, ok := asInt(raw)
		if !ok {
			return nil, fmt.Errorf("resolve: option %q wants an integer, got %v", def.Key, raw)
		}
		if err := validateAgainstSchema(def, float64(n)); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, fmt.Errorf("resolve: option %q has unknown kind %q", def.Key, def.Kind)
	}
}

// resolveChoice accepts either a choice label or a raw code.
func resolveChoice(def options.Definition, raw any) (any, error) {
	if label, ok := raw.(string); ok {
		choice, found := def.ChoiceByLabel(label)
		if !found {
			return nil, fmt.Errorf("resolve: option %q has no choice %q", def.Key, label)
		}
		return choice.Code, nil
	}
	if code, ok := asInt(raw); ok {
		if err := validateAgainstSchema(def, float64(code)); err != nil {
			return nil, err
		}
		return code, nil
	}
	return nil, fmt.Errorf("resolve: option %q wants a choice label or code, got %v", def.Key, raw)
}

func validateAgainstSchema(def options.Definition, value any) error {
	schema, err := SchemaFor(def)
	if err != nil {
		return err
	}
	if err := schema.VisitJSON(value); err != nil {
		return fmt.Errorf("resolve: option %q value %v: %w", def.Key, value, err)
	}
	return nil
}

func asInt(raw any) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
