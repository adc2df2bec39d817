package anthropic

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeWithoutTools(t *testing.T) {
	temperature := 0.5
	req := &RequestBody{
		MaxTokens: 1024,
		Messages: []Message{
			{Content: []ContentBlock{TextBlock("hi")}, Role: RoleUser},
		},
		Model:       "claude-3-5-sonnet-latest",
		System:      "be brief",
		Temperature: &temperature,
	}

	data, err := req.Serialize()
	assert.NoError(t, err)
	assert.Equal(t,
		`{"max_tokens":1024,`+
			`"messages":[{"content":[{"text":"hi","type":"text"}],"role":"user"}],`+
			`"model":"claude-3-5-sonnet-latest",`+
			`"system":"be brief",`+
			`"temperature":0.5}`,
		string(data))
}

func TestSerializeAllOptionalFields(t *testing.T) {
	temperature := 0.7
	topK := 40
	topP := 0.9
	req := &RequestBody{
		MaxTokens: 2048,
		Messages: []Message{
			{Content: []ContentBlock{TextBlock("hello")}, Role: RoleUser},
		},
		Metadata:      &Metadata{UserID: "user-123"},
		Model:         "claude-3-5-haiku-latest",
		StopSequences: []string{"\n\nHuman:"},
		Stream:        true,
		System:        "You are terse.",
		Temperature:   &temperature,
		TopK:          &topK,
		TopP:          &topP,
	}

	data, err := req.Serialize()
	assert.NoError(t, err)
	assert.Equal(t,
		`{"max_tokens":2048,`+
			`"messages":[{"content":[{"text":"hello","type":"text"}],"role":"user"}],`+
			`"metadata":{"user_id":"user-123"},`+
			`"model":"claude-3-5-haiku-latest",`+
			`"stop_sequences":["\n\nHuman:"],`+
			`"stream":true,`+
			`"system":"You are terse.",`+
			`"temperature":0.7,`+
			`"top_k":40,`+
			`"top_p":0.9}`,
		string(data))
}

func TestSerializeEmptyToolListMatchesAbsent(t *testing.T) {
	base := RequestBody{
		MaxTokens: 256,
		Messages: []Message{
			{Content: []ContentBlock{TextBlock("ping")}, Role: RoleUser},
		},
		Model: "claude-3-5-sonnet-latest",
	}

	withEmpty := base
	withEmpty.Tools = []Tool{}

	absent, err := base.Serialize()
	assert.NoError(t, err)
	empty, err := withEmpty.Serialize()
	assert.NoError(t, err)
	assert.Equal(t, string(absent), string(empty))
}

func TestSerializeWithTools(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ticker": map[string]any{"type": "string"},
		},
		"required": []any{"ticker"},
	}
	req := &RequestBody{
		MaxTokens: 1024,
		Messages: []Message{
			{Content: []ContentBlock{TextBlock("What is the stock price of Apple?")}, Role: RoleUser},
		},
		Model:      "claude-3-5-sonnet-latest",
		ToolChoice: ToolChoiceAuto(),
		Tools: []Tool{
			{
				Description: "Get the current stock price for a ticker symbol",
				InputSchema: schema,
				Name:        "get_stock_price",
			},
		},
	}

	data, err := req.Serialize()
	assert.NoError(t, err)
	assert.Equal(t,
		`{"max_tokens":1024,`+
			`"messages":[{"content":[{"text":"What is the stock price of Apple?","type":"text"}],"role":"user"}],`+
			`"model":"claude-3-5-sonnet-latest",`+
			`"tool_choice":{"type":"auto"},`+
			`"tools":[{"description":"Get the current stock price for a ticker symbol",`+
			`"input_schema":{"properties":{"ticker":{"type":"string"}},"required":["ticker"],"type":"object"},`+
			`"name":"get_stock_price"}]}`,
		string(data))

	// The schema must survive the patch verbatim, nested structure included.
	var tree map[string]any
	assert.NoError(t, json.Unmarshal(data, &tree))
	tools := tree["tools"].([]any)
	assert.Len(t, tools, 1)
	assert.Equal(t, schema, tools[0].(map[string]any)["input_schema"])
}

func TestSerializePreservesSchemaShapes(t *testing.T) {
	schemas := []any{
		map[string]any{"type": "object", "properties": map[string]any{}},
		map[string]any{},
		map[string]any{
			"type": "array",
			"items": map[string]any{
				"enum": []any{"a", "b", []any{"nested"}},
			},
		},
		json.RawMessage(`{"required":["x"],"type":"object"}`),
	}

	tools := make([]Tool, len(schemas))
	for i, schema := range schemas {
		tools[i] = Tool{
			Description: "test tool",
			InputSchema: schema,
			Name:        "tool_" + string(rune('a'+i)),
		}
	}

	req := &RequestBody{
		MaxTokens: 64,
		Messages: []Message{
			{Content: []ContentBlock{TextBlock("go")}, Role: RoleUser},
		},
		Model: "claude-3-5-sonnet-latest",
		Tools: tools,
	}

	data, err := req.Serialize()
	assert.NoError(t, err)

	var tree map[string]any
	assert.NoError(t, json.Unmarshal(data, &tree))
	patched := tree["tools"].([]any)
	assert.Len(t, patched, len(schemas))

	for i, schema := range schemas {
		want, err := toGenericJSON(schema)
		assert.NoError(t, err)
		entry := patched[i].(map[string]any)
		assert.Equal(t, want, entry["input_schema"], "schema %d mismatch", i)
		assert.Equal(t, tools[i].Name, entry["name"])
	}
}

func TestSerializeIsIdempotent(t *testing.T) {
	temperature := 0.25
	req := &RequestBody{
		MaxTokens: 512,
		Messages: []Message{
			{Content: []ContentBlock{TextBlock("first")}, Role: RoleUser},
			{Content: []ContentBlock{TextBlock("second")}, Role: RoleAssistant},
		},
		Model:       "claude-3-5-sonnet-latest",
		Temperature: &temperature,
		Tools: []Tool{
			{Description: "noop", InputSchema: map[string]any{"type": "object"}, Name: "noop"},
		},
	}

	first, err := req.Serialize()
	assert.NoError(t, err)

	// Re-encoding the generic tree must reproduce the same canonical bytes.
	var tree map[string]any
	assert.NoError(t, json.Unmarshal(first, &tree))
	second, err := json.Marshal(tree)
	assert.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestEncodeWithToolsRequiresTools(t *testing.T) {
	req := &RequestBody{
		MaxTokens: 128,
		Messages: []Message{
			{Content: []ContentBlock{TextBlock("hi")}, Role: RoleUser},
		},
		Model: "claude-3-5-sonnet-latest",
	}

	_, err := req.encodeWithTools()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvariant))
}

func TestSerializeDoesNotMutateRequest(t *testing.T) {
	schema := map[string]any{"type": "object"}
	req := &RequestBody{
		MaxTokens: 128,
		Messages: []Message{
			{Content: []ContentBlock{TextBlock("hi")}, Role: RoleUser},
		},
		Model: "claude-3-5-sonnet-latest",
		Tools: []Tool{
			{Description: "d", InputSchema: schema, Name: "t"},
		},
	}

	_, err := req.Serialize()
	assert.NoError(t, err)
	assert.Equal(t, schema, req.Tools[0].InputSchema)
}
