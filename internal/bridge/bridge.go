// Package bridge converts OpenAI-style chat completion requests into
// Anthropic Messages API request bodies.
package bridge

import (
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jordanvaneetveldt/claudewire/internal/anthropic"
	"github.com/jordanvaneetveldt/claudewire/internal/logger"
)

// DefaultMaxTokens is used when the OpenAI request does not set a limit;
// the Messages API requires one.
const DefaultMaxTokens = 1024

// Bridge translates requests between the two provider formats.
type Bridge struct {
	logger *logger.Logger
}

// NewBridge creates a new request bridge.
func NewBridge() *Bridge {
	return &Bridge{
		logger: logger.GetLogger().WithComponent("bridge"),
	}
}

// FromOpenAI builds an Anthropic request body from an OpenAI chat completion
// request. System messages are hoisted into the system prompt, content parts
// become content blocks, and function tools carry their parameter schema
// across opaquely.
func (b *Bridge) FromOpenAI(req *openai.ChatCompletionRequest) (*anthropic.RequestBody, error) {
	out := &anthropic.RequestBody{
		MaxTokens:     req.MaxTokens,
		Model:         req.Model,
		StopSequences: req.Stop,
		Stream:        req.Stream,
	}
	if out.MaxTokens == 0 {
		out.MaxTokens = DefaultMaxTokens
	}
	if req.Temperature != 0 {
		temperature := float64(req.Temperature)
		out.Temperature = &temperature
	}
	if req.TopP != 0 {
		topP := float64(req.TopP)
		out.TopP = &topP
	}
	if req.User != "" {
		out.Metadata = &anthropic.Metadata{UserID: req.User}
	}

	for _, msg := range req.Messages {
		switch msg.Role {
		case openai.ChatMessageRoleSystem:
			// The Messages API takes the system prompt as a top-level field.
			if out.System != "" {
				out.System += "\n\n"
			}
			out.System += msg.Content
		case openai.ChatMessageRoleUser, openai.ChatMessageRoleAssistant:
			converted, err := convertMessage(msg)
			if err != nil {
				return nil, err
			}
			out.Messages = append(out.Messages, converted)
		default:
			return nil, fmt.Errorf("unsupported message role %q", msg.Role)
		}
	}

	for _, tool := range req.Tools {
		if tool.Type != openai.ToolTypeFunction || tool.Function == nil {
			return nil, fmt.Errorf("unsupported tool type %q", tool.Type)
		}
		out.Tools = append(out.Tools, anthropic.Tool{
			Description: tool.Function.Description,
			InputSchema: tool.Function.Parameters,
			Name:        tool.Function.Name,
		})
	}

	choice, err := convertToolChoice(req.ToolChoice)
	if err != nil {
		return nil, err
	}
	out.ToolChoice = choice

	b.logger.Debug("Converted OpenAI request: %d messages, %d tools", len(out.Messages), len(out.Tools))
	return out, nil
}

// convertMessage maps one conversational turn onto Anthropic content blocks.
func convertMessage(msg openai.ChatCompletionMessage) (anthropic.Message, error) {
	role := anthropic.RoleUser
	if msg.Role == openai.ChatMessageRoleAssistant {
		role = anthropic.RoleAssistant
	}

	if len(msg.MultiContent) == 0 {
		return anthropic.Message{
			Content: []anthropic.ContentBlock{anthropic.TextBlock(msg.Content)},
			Role:    role,
		}, nil
	}

	blocks := make([]anthropic.ContentBlock, 0, len(msg.MultiContent))
	for _, part := range msg.MultiContent {
		switch part.Type {
		case openai.ChatMessagePartTypeText:
			blocks = append(blocks, anthropic.TextBlock(part.Text))
		case openai.ChatMessagePartTypeImageURL:
			if part.ImageURL == nil {
				return anthropic.Message{}, fmt.Errorf("image part has no image_url")
			}
			block, err := imageBlockFromDataURL(part.ImageURL.URL)
			if err != nil {
				return anthropic.Message{}, err
			}
			blocks = append(blocks, block)
		default:
			return anthropic.Message{}, fmt.Errorf("unsupported content part type %q", part.Type)
		}
	}

	return anthropic.Message{Content: blocks, Role: role}, nil
}

// imageBlockFromDataURL decodes a base64 data URL into an image block.
// Remote image URLs are not supported: this layer performs no I/O.
func imageBlockFromDataURL(url string) (anthropic.ContentBlock, error) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return anthropic.ContentBlock{}, fmt.Errorf("image URL %q is not a data URL", url)
	}
	mediaType, data, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return anthropic.ContentBlock{}, fmt.Errorf("image data URL is not base64 encoded")
	}

	switch media := anthropic.MediaType(mediaType); media {
	case anthropic.MediaTypeJPEG, anthropic.MediaTypePNG, anthropic.MediaTypeGIF, anthropic.MediaTypeWebP:
		return anthropic.ImageBlock(media, data), nil
	default:
		return anthropic.ContentBlock{}, fmt.Errorf("unsupported image media type %q", mediaType)
	}
}

// convertToolChoice maps the OpenAI tool choice onto the Anthropic tagged union.
func convertToolChoice(choice any) (*anthropic.ToolChoice, error) {
	switch v := choice.(type) {
	case nil:
		return nil, nil
	case string:
		switch v {
		case "":
			return nil, nil
		case "auto":
			return anthropic.ToolChoiceAuto(), nil
		case "required", "any":
			return anthropic.ToolChoiceAny(), nil
		default:
			return nil, fmt.Errorf("unsupported tool choice %q", v)
		}
	case openai.ToolChoice:
		if v.Type != openai.ToolTypeFunction {
			return nil, fmt.Errorf("unsupported tool choice type %q", v.Type)
		}
		return anthropic.ToolChoiceNamed(v.Function.Name), nil
	default:
		return nil, fmt.Errorf("unsupported tool choice value %T", choice)
	}
}
