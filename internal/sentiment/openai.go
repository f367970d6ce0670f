package sentiment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/Alias1177/Scanner/models"
)

const systemPrompt = "You are a financial sentiment analyzer. Analyze these headlines for " +
	"1) Sentiment Score (-1 to 1) 2) Social Hype/Viral Potential (0 to 10) 3) A 1-sentence summary reasoning. " +
	"Return JSON: { sentiment, socialHype, summary }"

// OpenAIAnalyzer implements models.SentimentAnalyzer on top of the chat
// completions API. The scoring core only ever sees the resolved value.
type OpenAIAnalyzer struct {
	client *openai.Client
	logger zerolog.Logger
}

// NewOpenAIAnalyzer creates the analyzer. An empty key yields a client that
// reports neutral sentiment for every call.
func NewOpenAIAnalyzer(apiKey string) *OpenAIAnalyzer {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return &OpenAIAnalyzer{
		client: client,
		logger: log.With().Str("component", "sentiment").Logger(),
	}
}

// AnalyzeHeadlines sends the headlines for scoring and parses the JSON reply.
func (a *OpenAIAnalyzer) AnalyzeHeadlines(ctx context.Context, headlines []string) (models.SentimentAnalysis, error) {
	if a.client == nil || len(headlines) == 0 {
		return models.SentimentAnalysis{Summary: "No data"}, nil
	}

	payload, err := json.Marshal(headlines)
	if err != nil {
		return models.SentimentAnalysis{}, fmt.Errorf("marshaling headlines: %w", err)
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		a.logger.Error().Err(err).Msg("OpenAI API error")
		return models.SentimentAnalysis{}, err
	}
	if len(resp.Choices) == 0 {
		a.logger.Warn().Msg("OpenAI returned empty choices")
		return models.SentimentAnalysis{}, nil
	}

	var result models.SentimentAnalysis
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &result); err != nil {
		a.logger.Error().Err(err).Str("content", resp.Choices[0].Message.Content).Msg("Error parsing sentiment JSON")
		return models.SentimentAnalysis{}, fmt.Errorf("parsing sentiment JSON: %w", err)
	}

	return result, nil
}
