package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"roasthub-go/internal/model"
	"roasthub-go/internal/service"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeTweetService struct {
	items model.TweetItems
	calls int
}

func (f *fakeTweetService) Generate(_ context.Context, topic string) model.TweetItems {
	f.calls++
	return f.items
}

type fakeTweetRepo struct {
	saved   []model.Tweet
	history []model.Tweet
	saveErr error
	listErr error
}

func (f *fakeTweetRepo) Save(_ context.Context, tweet *model.Tweet) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *tweet)
	return nil
}

func (f *fakeTweetRepo) ListRecent(_ context.Context, limit int) ([]model.Tweet, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.history) > limit {
		return f.history[:limit], nil
	}
	return f.history, nil
}

func newTestRouter(svc service.TweetService, repo *fakeTweetRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTweetHandler(svc, repo)
	r.POST("/api/tweets/generate", h.Generate)
	r.GET("/api/tweets/history", h.History)
	return r
}

type generateResponse struct {
	Success bool             `json:"success"`
	Topic   string           `json:"topic"`
	Tweets  model.TweetItems `json:"tweets"`
	Error   string           `json:"error"`
	Message string           `json:"message"`
}

func postGenerate(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/tweets/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGenerate_BlankTopic(t *testing.T) {
	svc := &fakeTweetService{}
	repo := &fakeTweetRepo{}
	r := newTestRouter(svc, repo)

	for _, body := range []string{`{"topic": ""}`, `{"topic": "   "}`, `{}`, ``} {
		w := postGenerate(r, body)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res generateResponse
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, "Topic is required", res.Error)
	}

	// 校验失败时不触发生成，也不落库
	assert.Equal(t, 0, svc.calls)
	assert.Equal(t, 0, len(repo.saved))
}

func TestGenerate_Success(t *testing.T) {
	// 未配置 LLM 的真实 service：全部走兜底内容
	repo := &fakeTweetRepo{}
	r := newTestRouter(service.NewTweetService(nil), repo)

	w := postGenerate(r, `{"topic": "  IPL  "}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res generateResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, "IPL", res.Topic)
	assert.Equal(t, 10, len(res.Tweets))
	for i, tweet := range res.Tweets {
		if !strings.Contains(tweet.Text, "IPL") {
			t.Errorf("tweet %d does not contain topic: %q", i, tweet.Text)
		}
	}

	assert.Equal(t, 1, len(repo.saved))
	assert.Equal(t, "IPL", repo.saved[0].Topic)
	assert.Equal(t, 10, len(repo.saved[0].Tweets))
}

func TestGenerate_SaveFails(t *testing.T) {
	svc := &fakeTweetService{items: make(model.TweetItems, 10)}
	repo := &fakeTweetRepo{saveErr: errors.New("DB down")}
	r := newTestRouter(svc, repo)

	w := postGenerate(r, `{"topic": "IPL"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res generateResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Internal server error", res.Error)
}

type historyResponse struct {
	Success bool          `json:"success"`
	History []model.Tweet `json:"history"`
	Error   string        `json:"error"`
}

func TestHistory_Success(t *testing.T) {
	now := time.Now()
	repo := &fakeTweetRepo{
		history: []model.Tweet{
			{ID: 3, Topic: "IPL", GeneratedAt: now},
			{ID: 2, Topic: "exams", GeneratedAt: now.Add(-time.Minute)},
			{ID: 1, Topic: "Monday", GeneratedAt: now.Add(-time.Hour)},
		},
	}
	r := newTestRouter(&fakeTweetService{}, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/tweets/history", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res historyResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, 3, len(res.History))
	assert.Equal(t, "IPL", res.History[0].Topic)
	assert.Equal(t, "Monday", res.History[2].Topic)
}

func TestHistory_DBError(t *testing.T) {
	repo := &fakeTweetRepo{listErr: errors.New("DB down")}
	r := newTestRouter(&fakeTweetService{}, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/tweets/history", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res historyResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Failed to fetch history", res.Error)
}
