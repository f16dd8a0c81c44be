package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const defaultModel = "gpt-4o-mini"

const systemPrompt = `You are the friendly voice of a sleep tracking bot.

You receive a user's weekly and monthly sleep reports (bedtimes, wake times and durations per night), the rule-based advice the bot already gave, and the achievements the user has earned. Base every statement only on this data.

Your goals:
- Summarise how the user has been sleeping in plain, encouraging language.
- Point out patterns in duration, bedtime and wake time regularity.
- Compare the last week to the last month when both are present.
- Build on the rule-based advice instead of contradicting it.
- Mention an earned achievement when it fits.

Rules:
- Do NOT provide medical advice or diagnoses.
- If there are only a few nights of data, say so.
- Be short and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences about the user's recent sleep.",
  "observations": ["2-5 short observations grounded in the numbers."],
  "guidance": ["2-4 concrete habit suggestions."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's sleep.

- "weekly" covers up to the last 7 logged nights, "monthly" up to the last 30.
- Each report has "duration" statistics in hours and a "points" list, one per night.
- "advice" is present once the user has a full week of records.
- "achievements" lists the badge names already earned.

JSON:

%s

Respond in the required JSON format.`

// SummaryLLM turns a user's computed sleep context into a short narrative.
type SummaryLLM interface {
	GenerateSummary(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMSummaryOutput, error)
}

// OpenAIClient implements SummaryLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient returns nil if apiKey is empty. A nil client reports
// ErrOpenAIUnavailable on every call.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = defaultModel
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &OpenAIClient{
		client:       openai.NewClient(opts...),
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// WithSystemPrompt replaces the built-in system prompt, e.g. with one managed
// in Langfuse. Empty prompts are ignored.
func (c *OpenAIClient) WithSystemPrompt(prompt string) *OpenAIClient {
	if c != nil && prompt != "" {
		c.systemPrompt = prompt
	}
	return c
}

// GenerateSummary calls OpenAI to narrate the user's sleep context.
func (c *OpenAIClient) GenerateSummary(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMSummaryOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, contextJSON)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	var output domain.LLMSummaryOutput
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}
	return &output, nil
}
