package ai

import (
	"context"
	"errors"

	"github.com/gioco-play/easy-i18n/i18n"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	dashScopeBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1/"
	qwenModel        = "qwen-max-latest"
)

// QwenClient handles AI diagnosis using Alibaba Cloud Qwen
type QwenClient struct {
	apiKey  string
	baseURL string
}

// NewQwenClient creates a new Qwen AI client
func NewQwenClient(apiKey string) *QwenClient {
	return &QwenClient{apiKey: apiKey, baseURL: dashScopeBaseURL}
}

// Diagnose analyzes the lines of a failed upload and returns repair suggestions
func (c *QwenClient) Diagnose(ctx context.Context, logContent string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("DashScope API Key is not set")
	}

	client := openai.NewClient(
		option.WithAPIKey(c.apiKey),
		option.WithBaseURL(c.baseURL),
	)

	chatCompletion, err := client.Chat.Completions.New(
		ctx, openai.ChatCompletionNewParams{
			Messages: openai.F(
				[]openai.ChatCompletionMessageParamUnion{
					openai.SystemMessage(i18n.Sprintf("AI_DIAG_PROMPT_OSS")),
					openai.UserMessage(logContent),
				},
			),
			Model: openai.F(qwenModel),
		},
	)
	if err != nil {
		return "", err
	}
	if len(chatCompletion.Choices) == 0 {
		return "", errors.New("empty response from Qwen")
	}
	return chatCompletion.Choices[0].Message.Content, nil
}
