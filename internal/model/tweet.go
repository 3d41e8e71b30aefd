// Package model 包含了应用的数据模型定义。
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TweetItem 代表一条生成的吐槽推文及其四项评分。
// 评分取值 1-10，归一化之后五个字段保证全部存在。
type TweetItem struct {
	Text      string `json:"text"`
	Viral     int    `json:"viral"`
	Relatable int    `json:"relatable"`
	Savage    int    `json:"savage"`
	Brutal    int    `json:"brutal"`
	Reason    string `json:"reason"`
}

// TweetItems 以 JSON 列的形式整体存储在 tweets 表中，
// 对应原始设计里内嵌在单条文档中的推文数组。
type TweetItems []TweetItem

// Value 实现 driver.Valuer 接口。
func (t TweetItems) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan 实现 sql.Scanner 接口。
func (t *TweetItems) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for TweetItems: %T", value)
	}
	return json.Unmarshal(data, t)
}

// Tweet 代表一次生成事件的持久化记录，创建后不再修改。
type Tweet struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Topic       string     `gorm:"type:varchar(255);not null" json:"topic"`
	Tweets      TweetItems `gorm:"type:json;not null" json:"tweets"`
	GeneratedAt time.Time  `gorm:"autoCreateTime;index:idx_tweets_generated_at,sort:desc" json:"generatedAt"`
}

func (Tweet) TableName() string {
	return "tweets"
}
