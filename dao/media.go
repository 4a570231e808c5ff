package dao

import (
	"context"

	"gorm.io/gorm"

	"tweeter/models"
)

type MediaDAO struct {
	Repo[models.Media]
}

func NewMediaDAO(db *gorm.DB) *MediaDAO {
	return &MediaDAO{Repo: NewRepo[models.Media](db)}
}

// FindByIDs 按ID列表批量查询媒体记录
func (d *MediaDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Media, error) {
	if len(ids) == 0 {
		return []*models.Media{}, nil
	}
	var medias []*models.Media
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&medias).Error
	return medias, err
}
