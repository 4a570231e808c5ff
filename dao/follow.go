package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tweeter/models"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{Repo: NewRepo[models.Follow](db)}
}

// InsertIfAbsent 原子建立关注关系，依赖 uk_following_followed 唯一键吸收并发重复
func (d *FollowDAO) InsertIfAbsent(ctx context.Context, followingID, followedID int64) (ToggleResult, error) {
	follow := models.Follow{
		FollowingUserID: followingID,
		FollowedUserID:  followedID,
		CreatedAt:       time.Now(),
	}
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "following_user_id"}, {Name: "followed_user_id"}},
			DoNothing: true,
		}).
		Create(&follow)
	if res.Error != nil {
		return ToggleAlreadyExists, res.Error
	}
	if res.RowsAffected == 0 {
		return ToggleAlreadyExists, nil
	}
	return ToggleCreated, nil
}

// DeleteByPair 删除关注关系
func (d *FollowDAO) DeleteByPair(ctx context.Context, followingID, followedID int64) (ToggleResult, error) {
	res := d.Db.WithContext(ctx).
		Where("following_user_id = ? AND followed_user_id = ?", followingID, followedID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return ToggleNotFound, res.Error
	}
	if res.RowsAffected == 0 {
		return ToggleNotFound, nil
	}
	return ToggleDeleted, nil
}

// IsFollowing 检查是否已关注
func (d *FollowDAO) IsFollowing(ctx context.Context, followingID, followedID int64) (bool, error) {
	return d.IsExist(ctx, "following_user_id = ? AND followed_user_id = ?", followingID, followedID)
}

// FindFollowing 查询用户关注的全部用户ID
func (d *FollowDAO) FindFollowing(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_user_id = ?", userID).
		Pluck("followed_user_id", &ids).Error
	return ids, err
}

// FindFollowers 查询关注该用户的全部用户ID
func (d *FollowDAO) FindFollowers(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("followed_user_id = ?", userID).
		Pluck("following_user_id", &ids).Error
	return ids, err
}
