package service

import (
	"context"
	"errors"
	"roasthub-go/internal/model"
	"roasthub-go/pkg/llm"
	"roasthub-go/pkg/log"

	openai "github.com/openai/openai-go"
)

// TweetService 定义了推文生成的业务接口。
type TweetService interface {
	// Generate 为指定话题生成恰好 10 条推文。永远不会失败：
	// 模型未配置、调用出错或输出不可用时降级为兜底内容。
	Generate(ctx context.Context, topic string) model.TweetItems
}

type tweetService struct {
	llmClient llm.Client
}

// NewTweetService 创建一个新的 TweetService。llmClient 传 nil 表示
// 模型未配置，所有请求直接走兜底内容。
func NewTweetService(llmClient llm.Client) TweetService {
	return &tweetService{llmClient: llmClient}
}

func (s *tweetService) Generate(ctx context.Context, topic string) model.TweetItems {
	if s.llmClient == nil {
		log.Infof("LLM 未配置，话题 %q 使用兜底推文", topic)
		return FallbackTweets(topic)
	}

	raw, err := s.llmClient.Complete(ctx, systemPrompt, buildPrompt(topic))
	if err != nil {
		// 失败分类仅用于运维排障，不改变降级结果
		logModelError(topic, err)
		return FallbackTweets(topic)
	}

	items, err := normalizeResponse([]byte(raw))
	if err != nil {
		log.Warnw("模型输出归一化失败，使用兜底推文",
			"topic", topic,
			"error", err,
			"rawResponse", raw,
		)
		return FallbackTweets(topic)
	}

	log.Infof("话题 %q 生成 %d 条 AI 推文", topic, len(items))
	return items
}

// logModelError 区分凭证、限额和传输层问题，方便运维定位。
func logModelError(topic string, err error) {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case 401, 403:
			log.Warnw("LLM 凭证无效，使用兜底推文", "topic", topic, "status", apierr.StatusCode, "error", err)
		case 429:
			log.Warnw("LLM 限额耗尽，使用兜底推文", "topic", topic, "status", apierr.StatusCode, "error", err)
		default:
			log.Warnw("LLM 接口返回错误，使用兜底推文", "topic", topic, "status", apierr.StatusCode, "error", err)
		}
		return
	}
	log.Warnw("LLM 调用失败（网络/传输层），使用兜底推文", "topic", topic, "error", err)
}
