// Package config loads request presets from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jordanvaneetveldt/claudewire/internal/anthropic"
)

// Defaults applied by NewRequest when a preset leaves a required field unset.
const (
	DefaultModel     = "claude-3-5-sonnet-latest"
	DefaultMaxTokens = 1024
)

// RequestConfig is a reusable preset for building Messages API requests.
// Sampling parameters are passed through as-is; nothing here range-checks
// them.
type RequestConfig struct {
	Model         string   `yaml:"model"`
	MaxTokens     int      `yaml:"max_tokens"`
	System        string   `yaml:"system,omitempty"`
	Temperature   *float64 `yaml:"temperature,omitempty"`
	TopK          *int     `yaml:"top_k,omitempty"`
	TopP          *float64 `yaml:"top_p,omitempty"`
	StopSequences []string `yaml:"stop_sequences,omitempty"`
	Stream        bool     `yaml:"stream,omitempty"`
	UserID        string   `yaml:"user_id,omitempty"`
}

// LoadConfig loads a request preset from a YAML file.
func LoadConfig(path string) (*RequestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg RequestConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// NewRequest builds a single-turn request from the preset with the given
// user prompt, filling in defaults for model and max_tokens.
func (c *RequestConfig) NewRequest(prompt string) *anthropic.RequestBody {
	req := &anthropic.RequestBody{
		MaxTokens: c.MaxTokens,
		Messages: []anthropic.Message{
			{
				Content: []anthropic.ContentBlock{anthropic.TextBlock(prompt)},
				Role:    anthropic.RoleUser,
			},
		},
		Model:         c.Model,
		StopSequences: c.StopSequences,
		Stream:        c.Stream,
		System:        c.System,
		Temperature:   c.Temperature,
		TopK:          c.TopK,
		TopP:          c.TopP,
	}
	if req.Model == "" {
		req.Model = DefaultModel
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = DefaultMaxTokens
	}
	if c.UserID != "" {
		req.Metadata = &anthropic.Metadata{UserID: c.UserID}
	}
	return req
}
