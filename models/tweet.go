package models

import (
	"time"

	"gorm.io/datatypes"
)

type Tweet struct {
	ID        int64                      `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64                      `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Text      string                     `gorm:"column:text;type:text" json:"text"`
	Media     datatypes.JSONSlice[int64] `gorm:"column:media" json:"media"` // 媒体ID列表，保持顺序
	CreatedAt time.Time                  `gorm:"column:created_at;not null;index:idx_created_at" json:"created_at"`
}

func (Tweet) TableName() string {
	return "tweets"
}
