package llm

import (
	"context"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"

	"partyplanner/internal/domain"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT3Dot5Turbo

// ClientConfig holds configuration for the OpenAI chat completion client.
type ClientConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the API base, e.g. "http://localhost:8080/v1".
	BaseURL     string
	Temperature float32
}

type openAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewClient returns a domain.Completer backed by the OpenAI chat completion API.
func NewClient(cfg ClientConfig) domain.Completer {
	oaCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oaCfg.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &openAIClient{
		client:      openai.NewClientWithConfig(oaCfg),
		model:       model,
		temperature: cfg.Temperature,
	}
}

func (c *openAIClient) Complete(ctx context.Context, prompt string, opts domain.CompletionOptions) (string, error) {
	temperature := c.temperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: wireTemperature(temperature),
	}
	if opts.JSON {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %v", domain.ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: completion returned no choices", domain.ErrMalformedModelOutput)
	}
	return resp.Choices[0].Message.Content, nil
}

// wireTemperature maps t to the value sent on the wire. go-openai omits a zero
// temperature, which the API then treats as 1.
func wireTemperature(t float32) float32 {
	if t <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
