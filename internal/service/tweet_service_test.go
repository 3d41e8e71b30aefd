package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"
)

// fakeLLMClient 返回预置的响应或错误，不访问网络。
type fakeLLMClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLMClient) Complete(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.response, f.err
}

func TestGenerate_UnconfiguredUsesFallback(t *testing.T) {
	svc := NewTweetService(nil)

	got := svc.Generate(context.Background(), "IPL")

	assert.Equal(t, FallbackTweets("IPL"), got)
}

func TestGenerate_ModelErrorUsesFallback(t *testing.T) {
	client := &fakeLLMClient{err: errors.New("connection refused")}
	svc := NewTweetService(client)

	got := svc.Generate(context.Background(), "IPL")

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, FallbackTweets("IPL"), got)
}

func TestGenerate_MalformedJSONUsesFallback(t *testing.T) {
	client := &fakeLLMClient{response: "sorry, I cannot help with that"}
	svc := NewTweetService(client)

	got := svc.Generate(context.Background(), "IPL")

	assert.Equal(t, FallbackTweets("IPL"), got)
}

func TestGenerate_TooFewItemsUsesFallback(t *testing.T) {
	body, _ := json.Marshal(map[string]interface{}{"tweets": canonicalItems(8)})
	client := &fakeLLMClient{response: string(body)}
	svc := NewTweetService(client)

	got := svc.Generate(context.Background(), "IPL")

	assert.Equal(t, FallbackTweets("IPL"), got)
}

func TestGenerate_ValidResponse(t *testing.T) {
	want := canonicalItems(10)
	body, _ := json.Marshal(want)
	client := &fakeLLMClient{response: string(body)}
	svc := NewTweetService(client)

	got := svc.Generate(context.Background(), "IPL")

	assert.Equal(t, want, got)
}

func TestGenerate_AlwaysTenValidItems(t *testing.T) {
	clients := []*fakeLLMClient{
		nil,
		{err: errors.New("boom")},
		{response: "not json"},
		{response: `{"tweets": []}`},
	}
	for _, client := range clients {
		svc := NewTweetService(nil)
		if client != nil {
			svc = NewTweetService(client)
		}
		items := svc.Generate(context.Background(), "exams")
		assert.Equal(t, 10, len(items))
		for _, item := range items {
			if item.Text == "" || item.Reason == "" {
				t.Fatalf("invalid item: %+v", item)
			}
			for _, rating := range []int{item.Viral, item.Relatable, item.Savage, item.Brutal} {
				if rating < 1 || rating > 10 {
					t.Fatalf("rating out of range: %+v", item)
				}
			}
		}
	}
}
