package models

import "time"

// Follow 关注关系
// 唯一键: following_user_id + followed_user_id
type Follow struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowingUserID int64     `gorm:"column:following_user_id;not null;uniqueIndex:uk_following_followed,priority:1" json:"following_user_id"` // 关注人
	FollowedUserID  int64     `gorm:"column:followed_user_id;not null;uniqueIndex:uk_following_followed,priority:2;index:idx_followed" json:"followed_user_id"` // 被关注人
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
