// Package repository 提供了数据访问层的实现。
package repository

import (
	"context"
	"fmt"
	"roasthub-go/internal/model"

	"gorm.io/gorm"
)

// TweetRepository 定义了生成记录的存储接口。
type TweetRepository interface {
	// Save 持久化一条生成记录。
	Save(ctx context.Context, tweet *model.Tweet) error
	// ListRecent 按生成时间倒序返回最近 limit 条记录。
	ListRecent(ctx context.Context, limit int) ([]model.Tweet, error)
}

type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository 创建一个新的 TweetRepository 实例。
func NewTweetRepository(db *gorm.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Save(ctx context.Context, tweet *model.Tweet) error {
	if err := r.db.WithContext(ctx).Create(tweet).Error; err != nil {
		return fmt.Errorf("failed to save tweet record: %w", err)
	}
	return nil
}

func (r *tweetRepository) ListRecent(ctx context.Context, limit int) ([]model.Tweet, error) {
	var tweets []model.Tweet
	err := r.db.WithContext(ctx).
		Order("generated_at DESC").
		Limit(limit).
		Find(&tweets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tweet history: %w", err)
	}
	return tweets, nil
}
