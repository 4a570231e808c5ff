package models

import "time"

type Media struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Link      string    `gorm:"column:link;type:varchar(255);not null" json:"link"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Media) TableName() string {
	return "medias"
}
