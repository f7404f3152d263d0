package resolve

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/blocktales/go-manual/pkg/options"
)

// SchemaFor builds the JSON schema enforcing a definition's declared
// constraints: boolean with the toggle's resting state, bounded integer for
// ranges, and an integer enum for choices. The contributor side only declares
// bounds; this is the host-side enforcement of them.
func SchemaFor(def options.Definition) (*openapi3.Schema, error) {
	switch def.Kind {
	case options.KindToggle, options.KindDefaultOnToggle:
		return openapi3.NewBoolSchema().WithDefault(def.DefaultOn), nil
	case options.KindRange:
		return openapi3.NewIntegerSchema().
			WithDefault(def.Default).
			WithMin(float64(def.RangeStart)).
			WithMax(float64(def.RangeEnd)), nil
	case options.KindChoice:
		codes := make([]any, 0, len(def.Choices))
		for _, c := range def.Choices {
			codes = append(codes, float64(c.Code))
		}
		return openapi3.NewIntegerSchema().
			WithDefault(def.Default).
			WithEnum(codes...), nil
	default:
		return nil, fmt.Errorf("resolve: option %q has unknown kind %q", def.Key, def.Kind)
	}
}
