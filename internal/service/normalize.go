package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"roasthub-go/internal/model"
)

// 归一化时为缺失/非法字段填充的默认值。
const (
	defaultText   = "Savage tweet here!"
	defaultReason = "Perfect desi vibe with viral potential"
	defaultRating = 7
	tweetCount    = 10
)

// ErrNotEnoughTweets 表示模型返回的条目不足 10 条。
var ErrNotEnoughTweets = errors.New("model returned fewer than 10 tweets")

// responseShape 标记模型输出命中的形状变体。
type responseShape int

const (
	shapeUnknown responseShape = iota
	shapeBareList
	shapeTweetsField
	shapeDataField
)

func (s responseShape) String() string {
	switch s {
	case shapeBareList:
		return "bare list"
	case shapeTweetsField:
		return "tweets field"
	case shapeDataField:
		return "data field"
	default:
		return "unknown"
	}
}

// wrappedResponse 覆盖模型把数组包在对象里的两种已知变体。
type wrappedResponse struct {
	Tweets []json.RawMessage `json:"tweets"`
	Data   []json.RawMessage `json:"data"`
}

// rawTweet 保留单条候选的原始字段，逐字段做类型校验与默认值填充，
// 单个字段损坏不会拖垮整条记录。
type rawTweet struct {
	Text      json.RawMessage `json:"text"`
	Viral     json.RawMessage `json:"viral"`
	Relatable json.RawMessage `json:"relatable"`
	Savage    json.RawMessage `json:"savage"`
	Brutal    json.RawMessage `json:"brutal"`
	Reason    json.RawMessage `json:"reason"`
}

// normalizeResponse 把模型返回的自由格式文本归一化为恰好 10 条推文。
// 接受裸数组、{"tweets":[...]}、{"data":[...]} 三种形状；
// 超过 10 条时截断为前 10 条，不足 10 条返回 ErrNotEnoughTweets。
// 纯函数，不访问网络和数据库。
func normalizeResponse(body []byte) (model.TweetItems, error) {
	candidates, shape, err := extractCandidates(stripCodeFence(body))
	if err != nil {
		return nil, err
	}
	if len(candidates) < tweetCount {
		return nil, fmt.Errorf("%w: got %d (shape: %s)", ErrNotEnoughTweets, len(candidates), shape)
	}

	items := make(model.TweetItems, 0, tweetCount)
	for _, c := range candidates[:tweetCount] {
		items = append(items, coerceTweet(c))
	}
	return items, nil
}

// extractCandidates 按固定顺序尝试三种已知形状，全部不匹配时返回 unknown。
func extractCandidates(body []byte) ([]json.RawMessage, responseShape, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil {
		return list, shapeBareList, nil
	}

	var wrapped wrappedResponse
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, shapeUnknown, fmt.Errorf("response is not valid JSON: %w", err)
	}
	switch {
	case wrapped.Tweets != nil:
		return wrapped.Tweets, shapeTweetsField, nil
	case wrapped.Data != nil:
		return wrapped.Data, shapeDataField, nil
	default:
		return nil, shapeUnknown, nil
	}
}

// coerceTweet 把一条候选强制转换为规范形状。字段缺失或类型不符时
// 填默认值而不是丢弃整条。
func coerceTweet(raw json.RawMessage) model.TweetItem {
	var fields rawTweet
	// 解析失败时 fields 为零值，全部走默认分支
	_ = json.Unmarshal(raw, &fields)

	return model.TweetItem{
		Text:      stringOr(fields.Text, defaultText),
		Viral:     ratingOr(fields.Viral),
		Relatable: ratingOr(fields.Relatable),
		Savage:    ratingOr(fields.Savage),
		Brutal:    ratingOr(fields.Brutal),
		Reason:    stringOr(fields.Reason, defaultReason),
	}
}

func stringOr(raw json.RawMessage, def string) string {
	var s string
	if raw != nil && json.Unmarshal(raw, &s) == nil && s != "" {
		return s
	}
	return def
}

func ratingOr(raw json.RawMessage) int {
	var f float64
	if raw != nil && json.Unmarshal(raw, &f) == nil {
		return int(f)
	}
	return defaultRating
}

// stripCodeFence 去掉模型喜欢包在 JSON 外面的 markdown 代码块标记。
func stripCodeFence(body []byte) []byte {
	trimmed := bytes.TrimSpace(body)
	if !bytes.HasPrefix(trimmed, []byte("```")) {
		return trimmed
	}
	trimmed = bytes.TrimPrefix(trimmed, []byte("```json"))
	trimmed = bytes.TrimPrefix(trimmed, []byte("```"))
	trimmed = bytes.TrimSuffix(bytes.TrimSpace(trimmed), []byte("```"))
	return bytes.TrimSpace(trimmed)
}
