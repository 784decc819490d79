package response

import (
	"encoding/json"
	"strings"

	"bootcamper/internal/domain/query"

	"github.com/pkg/errors"
)

// projection is a tree of kept keys; a nil subtree keeps the whole value.
type projection map[string]projection

func newProjection(fields []string) projection {
	root := projection{}
	for _, field := range fields {
		node := root
		parts := strings.Split(field, ".")
		for i, part := range parts {
			child, seen := node[part]
			if seen && child == nil {
				break
			}
			if i == len(parts)-1 {
				node[part] = nil

				break
			}
			if child == nil {
				child = projection{}
				node[part] = child
			}
			node = child
		}
	}

	return root
}

func (p projection) apply(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(p))
		for key, sub := range p {
			value, ok := typed[key]
			if !ok {
				continue
			}
			if sub == nil {
				out[key] = value
			} else {
				out[key] = sub.apply(value)
			}
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = p.apply(item)
		}

		return out
	default:
		return v
	}
}

// Project renders v with only the selected fields, always including the identifier.
// Dotted fields select nested keys; keep names extra top-level keys such as populated relations.
func Project(v any, fields []string, keep ...string) (any, error) {
	if len(fields) == 0 {
		return v, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode projected value")
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, errors.Wrap(err, "failed to decode projected value")
	}

	selected := make([]string, 0, len(fields)+len(keep)+1)
	selected = append(selected, query.IDField)
	selected = append(selected, fields...)
	selected = append(selected, keep...)

	return newProjection(selected).apply(decoded), nil
}
