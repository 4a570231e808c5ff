package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tweeter/models"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// InsertIfAbsent 原子写入点赞记录，依赖 uk_user_tweet 唯一键吸收并发重复
func (d *LikeDAO) InsertIfAbsent(ctx context.Context, userID, tweetID int64) (ToggleResult, error) {
	like := models.Like{
		UserID:    userID,
		TweetID:   tweetID,
		CreatedAt: time.Now(),
	}
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "tweet_id"}},
			DoNothing: true,
		}).
		Create(&like)
	if res.Error != nil {
		return ToggleAlreadyExists, res.Error
	}
	if res.RowsAffected == 0 {
		return ToggleAlreadyExists, nil
	}
	return ToggleCreated, nil
}

// DeleteByUserTweet 删除点赞记录
func (d *LikeDAO) DeleteByUserTweet(ctx context.Context, userID, tweetID int64) (ToggleResult, error) {
	res := d.Db.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&models.Like{})
	if res.Error != nil {
		return ToggleNotFound, res.Error
	}
	if res.RowsAffected == 0 {
		return ToggleNotFound, nil
	}
	return ToggleDeleted, nil
}

// IsLiked 是否已点赞
func (d *LikeDAO) IsLiked(ctx context.Context, userID, tweetID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND tweet_id = ?", userID, tweetID)
}

// FindByTweetIDs 按推文ID列表批量查询点赞记录
func (d *LikeDAO) FindByTweetIDs(ctx context.Context, tweetIDs []int64) ([]*models.Like, error) {
	if len(tweetIDs) == 0 {
		return []*models.Like{}, nil
	}
	var likes []*models.Like
	err := d.Db.WithContext(ctx).
		Where("tweet_id IN ?", tweetIDs).
		Find(&likes).Error
	return likes, err
}
