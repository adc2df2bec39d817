// Package anthropic models request bodies for the Anthropic Messages API
// and renders them as canonical JSON.
package anthropic

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// MediaType identifies the encoding of an image content block.
type MediaType string

const (
	MediaTypeJPEG MediaType = "image/jpeg"
	MediaTypePNG  MediaType = "image/png"
	MediaTypeGIF  MediaType = "image/gif"
	MediaTypeWebP MediaType = "image/webp"
)

// Content block discriminators on the wire.
const (
	ContentTypeText  = "text"
	ContentTypeImage = "image"
)

// RequestBody is a request to the Messages API. MaxTokens, Messages and Model
// are required; everything else is optional and omitted when unset. The body
// stores whatever the caller provides — range checks (e.g. temperature in
// [0,1]) are the caller's job, and out-of-range values pass through to the
// provider untouched.
//
// Fields are declared in the lexicographic order of their JSON keys, so a
// plain encode already emits sorted keys.
type RequestBody struct {
	MaxTokens     int         `json:"max_tokens"`
	Messages      []Message   `json:"messages"`
	Metadata      *Metadata   `json:"metadata,omitempty"`
	Model         string      `json:"model"`
	StopSequences []string    `json:"stop_sequences,omitempty"`
	Stream        bool        `json:"stream,omitempty"`
	System        string      `json:"system,omitempty"`
	Temperature   *float64    `json:"temperature,omitempty"`
	ToolChoice    *ToolChoice `json:"tool_choice,omitempty"`
	Tools         []Tool      `json:"tools,omitempty"`
	TopK          *int        `json:"top_k,omitempty"`
	TopP          *float64    `json:"top_p,omitempty"`
}

// Message is one turn of the conversation.
type Message struct {
	Content []ContentBlock `json:"content"`
	Role    Role           `json:"role"`
}

// ContentBlock is one unit of message content, either text or an image.
// Build values with TextBlock or ImageBlock rather than filling in fields
// by hand.
type ContentBlock struct {
	Source *ImageSource `json:"source,omitempty"`
	Text   *string      `json:"text,omitempty"`
	Type   string       `json:"type"`
}

// ImageSource carries a base64-encoded image payload.
type ImageSource struct {
	Data      string    `json:"data"`
	MediaType MediaType `json:"media_type"`
	Type      string    `json:"type"`
}

// TextBlock builds a text content block.
func TextBlock(text string) ContentBlock {
	return ContentBlock{
		Text: &text,
		Type: ContentTypeText,
	}
}

// ImageBlock builds an image content block from a base64-encoded payload.
func ImageBlock(media MediaType, data string) ContentBlock {
	return ContentBlock{
		Source: &ImageSource{
			Data:      data,
			MediaType: media,
			Type:      "base64",
		},
		Type: ContentTypeImage,
	}
}

// ToolChoice tells the model how to pick among the declared tools. Use the
// ToolChoiceAny, ToolChoiceAuto, or ToolChoiceNamed constructors.
type ToolChoice struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type"`
}

// ToolChoiceAny forces the model to use one of the declared tools.
func ToolChoiceAny() *ToolChoice {
	return &ToolChoice{Type: "any"}
}

// ToolChoiceAuto lets the model decide whether to use a tool.
func ToolChoiceAuto() *ToolChoice {
	return &ToolChoice{Type: "auto"}
}

// ToolChoiceNamed forces the model to use the named tool.
func ToolChoiceNamed(name string) *ToolChoice {
	return &ToolChoice{Name: name, Type: "tool"}
}

// Tool describes a capability the model may invoke. InputSchema is an
// arbitrary JSON value — by convention a JSON Schema object with "type",
// "properties" and "required" — that this layer never interprets.
type Tool struct {
	Description string `json:"description"`
	InputSchema any    `json:"input_schema"`
	Name        string `json:"name"`
}

// Metadata carries request metadata.
type Metadata struct {
	UserID string `json:"user_id,omitempty"`
}
