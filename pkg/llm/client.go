// Package llm provides a client for interacting with Large Language Models.
package llm

import (
	"context"
	"fmt"
	"roasthub-go/internal/config"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client defines the interface for an LLM client.
type Client interface {
	// Complete 以 system + user 两条消息调用 chat completions 接口，
	// 返回模型输出的完整文本。
	Complete(ctx context.Context, system, user string) (string, error)
}

// grokClient 基于官方 openai-go SDK 实现，BaseURL 指向 Grok 的
// OpenAI 兼容端点。
type grokClient struct {
	client openai.Client
	cfg    config.LLMConfig
}

// NewClient creates a new LLM client from the config.
// 返回的客户端是进程级资源，创建一次后复用。
func NewClient(cfg config.LLMConfig) Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &grokClient{
		client: openai.NewClient(opts...),
		cfg:    cfg,
	}
}

func (c *grokClient) Complete(ctx context.Context, system, user string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	}
	// 高温采样保证输出多样性
	if c.cfg.Generation.Temperature != 0 {
		params.Temperature = openai.Float(c.cfg.Generation.Temperature)
	}
	if c.cfg.Generation.MaxTokens != 0 {
		params.MaxTokens = openai.Int(int64(c.cfg.Generation.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to call chat api: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat api returned empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
