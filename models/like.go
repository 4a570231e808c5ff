package models

import "time"

// Like 点赞记录
// 唯一键: user_id + tweet_id
type Like struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_tweet,priority:1" json:"user_id"`
	TweetID   int64     `gorm:"column:tweet_id;not null;uniqueIndex:uk_user_tweet,priority:2;index:idx_tweet_id" json:"tweet_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string { return "likes" }
