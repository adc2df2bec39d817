package anthropic

// Usage reports token accounting for one API call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// MessageResponse is a non-streaming response from the Messages API.
type MessageResponse struct {
	Content      []ContentBlock `json:"content"`
	ID           string         `json:"id"`
	Model        string         `json:"model"`
	Role         Role           `json:"role"`
	StopReason   string         `json:"stop_reason"`
	StopSequence *string        `json:"stop_sequence"`
	Type         string         `json:"type"`
	Usage        Usage          `json:"usage"`
}
