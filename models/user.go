package models

type User struct {
	ID     int64  `gorm:"column:id;primaryKey" json:"id"`
	Name   string `gorm:"column:name;type:varchar(64);not null" json:"name"`
	ApiKey string `gorm:"column:api_key;type:varchar(64);not null;uniqueIndex:uk_api_key" json:"api_key"`
}

func (User) TableName() string {
	return "users"
}
