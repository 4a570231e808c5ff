package dao

import (
	"context"

	"gorm.io/gorm"

	"tweeter/models"
)

type TweetDAO struct {
	Repo[models.Tweet]
}

func NewTweetDAO(db *gorm.DB) *TweetDAO {
	return &TweetDAO{Repo: NewRepo[models.Tweet](db)}
}

// FindByID 按ID查询推文
func (d *TweetDAO) FindByID(ctx context.Context, id int64) (*models.Tweet, error) {
	return d.Repo.FindByWhere(ctx, "id = ?", id)
}

// FindByAuthorIDs 按作者ID列表查询推文，按创建时间倒序
func (d *TweetDAO) FindByAuthorIDs(ctx context.Context, authorIDs []int64) ([]*models.Tweet, error) {
	if len(authorIDs) == 0 {
		return []*models.Tweet{}, nil
	}
	var tweets []*models.Tweet
	err := d.Db.WithContext(ctx).
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Find(&tweets).Error
	return tweets, err
}

// DeleteWithLikes 删除推文并级联删除其点赞记录
func (d *TweetDAO) DeleteWithLikes(ctx context.Context, tweetID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", tweetID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", tweetID).Delete(&models.Tweet{}).Error
	})
}
