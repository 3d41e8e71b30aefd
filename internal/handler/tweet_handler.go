// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"
	"roasthub-go/internal/model"
	"roasthub-go/internal/repository"
	"roasthub-go/internal/service"
	"roasthub-go/pkg/log"
	"strings"

	"github.com/gin-gonic/gin"
)

// historyLimit 历史接口固定返回最近 10 条记录。
const historyLimit = 10

// GenerateRequest 是生成接口的请求体。
type GenerateRequest struct {
	Topic string `json:"topic"`
}

// TweetHandler 处理推文生成与历史查询相关的 API 请求。
type TweetHandler struct {
	service service.TweetService
	repo    repository.TweetRepository
}

// NewTweetHandler 创建一个新的 TweetHandler。
func NewTweetHandler(service service.TweetService, repo repository.TweetRepository) *TweetHandler {
	return &TweetHandler{service: service, repo: repo}
}

// Generate 处理 POST /api/tweets/generate。
// 话题为空直接返回 400，不触发生成和落库。
func (h *TweetHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Topic is required",
			"message": "Please provide a trending topic to generate tweets about",
		})
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Topic is required",
			"message": "Please provide a trending topic to generate tweets about",
		})
		return
	}

	log.Infof("收到生成请求，话题: %q", topic)

	// 生成永远成功（内部已降级处理），只有落库可能失败
	tweets := h.service.Generate(c.Request.Context(), topic)

	record := &model.Tweet{Topic: topic, Tweets: tweets}
	if err := h.repo.Save(c.Request.Context(), record); err != nil {
		log.Error("生成记录落库失败", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": "Failed to generate tweets. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"topic":   topic,
		"tweets":  tweets,
	})
}

// History 处理 GET /api/tweets/history，按时间倒序返回最近 10 条记录。
func (h *TweetHandler) History(c *gin.Context) {
	history, err := h.repo.ListRecent(c.Request.Context(), historyLimit)
	if err != nil {
		log.Error("查询历史记录失败", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch history",
			"message": "Could not retrieve tweet history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"history": history,
	})
}
