package anthropic

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvariant reports a broken serializer precondition. Errors wrapping it
// are programming errors, not transient failures, and must not be retried.
var ErrInvariant = errors.New("serializer invariant violation")

// Serialize renders the request as canonical JSON bytes with all object keys
// in sorted order, so equal requests always produce equal bytes.
//
// When the tool list is empty the struct encodes directly. When tools are
// present the arbitrary input_schema values cannot go through the strict
// struct encode, so the request is encoded with the schemas blanked and the
// original schema values are spliced back in at the generic JSON level.
func (r *RequestBody) Serialize() ([]byte, error) {
	if len(r.Tools) == 0 {
		data, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		return data, nil
	}
	return r.encodeWithTools()
}

// encodeWithTools implements the blank-then-patch encode for requests that
// declare tools. Splicing is positional: it requires the strict encode to
// preserve the count and order of the tool list, and fails if it does not.
func (r *RequestBody) encodeWithTools() ([]byte, error) {
	if len(r.Tools) == 0 {
		return nil, fmt.Errorf("%w: encodeWithTools called with no tools", ErrInvariant)
	}

	// Blank every schema so the strict encode never sees an arbitrary value.
	scratch := *r
	scratch.Tools = make([]Tool, len(r.Tools))
	for i, tool := range r.Tools {
		scratch.Tools[i] = tool
		scratch.Tools[i].InputSchema = struct{}{}
	}

	data, err := json.Marshal(&scratch)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: request did not round-trip to an object: %v", ErrInvariant, err)
	}

	rawTools, ok := tree["tools"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: request tree has no tools array", ErrInvariant)
	}
	if len(rawTools) != len(r.Tools) {
		return nil, fmt.Errorf("%w: tools array has %d entries, expected %d",
			ErrInvariant, len(rawTools), len(r.Tools))
	}

	for i, tool := range r.Tools {
		entry, ok := rawTools[i].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: tool %d is not an object", ErrInvariant, i)
		}
		schema, err := toGenericJSON(tool.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("encode input schema for tool %q: %w", tool.Name, err)
		}
		entry["input_schema"] = schema
	}

	patched, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("marshal patched request: %w", err)
	}
	return patched, nil
}

// toGenericJSON round-trips v through JSON into the generic representation
// (maps, slices, scalars), so the final marshal emits its keys sorted
// regardless of how the caller represented the schema.
func toGenericJSON(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
