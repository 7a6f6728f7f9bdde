package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenAI completes prompts with the Chat Completions API. Any compatible
// endpoint works through BaseURL, which is how OpenRouter is served.
type OpenAI struct {
	client *openai.Client
	vendor string
	model  string
}

func NewOpenAI(cfg Config) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai API key is required")
	}
	return newChatCompletions("openai", cfg.APIKey, cfg.BaseURL, cfg.Model), nil
}

// NewOpenRouter targets OpenRouter. Model ids are vendor-prefixed, e.g.
// "google/gemini-2.0-flash-exp", and are used as given.
func NewOpenRouter(cfg Config) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = openRouterBaseURL
	}
	return newChatCompletions("openrouter", cfg.APIKey, base, cfg.Model), nil
}

func newChatCompletions(vendor, key, baseURL, model string) *OpenAI {
	conf := openai.DefaultConfig(key)
	if baseURL != "" {
		conf.BaseURL = baseURL
	}
	return &OpenAI{client: openai.NewClientWithConfig(conf), vendor: vendor, model: model}
}

func (o *OpenAI) Name() string  { return o.vendor }
func (o *OpenAI) Model() string { return o.model }

func (o *OpenAI) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	req := openai.ChatCompletionRequest{
		Model:               o.model,
		MaxCompletionTokens: p.MaxTokens,
		Temperature:         float32(p.Temperature),
	}
	if p.System != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem, Content: p.System,
		})
	}
	req.Messages = append(req.Messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: p.User,
	})
	if p.Format != nil {
		schema, err := json.Marshal(p.Format.Schema)
		if err != nil {
			return nil, fmt.Errorf("marshal schema %s: %w", p.Format.Name, err)
		}
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        p.Format.Name,
				Description: p.Format.Description,
				Schema:      json.RawMessage(schema),
				Strict:      true,
			},
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, fromStatus(apiErr.HTTPStatusCode, err)
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return nil, fromStatus(reqErr.HTTPStatusCode, err)
		}
		return nil, &ErrUnavailable{Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrOutput{Err: fmt.Errorf("no choices in %s answer", o.model)}
	}

	choice := resp.Choices[0]
	stop := StopEnd
	if choice.FinishReason == openai.FinishReasonLength {
		stop = StopLength
	}
	return finish(p, choice.Message.Content, resp.Model, stop, Tokens{
		In:  resp.Usage.PromptTokens,
		Out: resp.Usage.CompletionTokens,
	})
}
