package service

import (
	"context"

	"tweeter/dao"
	"tweeter/pkg/response"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followingID, followedID int64) error
	Unfollow(ctx context.Context, followingID, followedID int64) error
	IsFollowing(ctx context.Context, followingID, followedID int64) (bool, error)
}

type FollowService struct {
	FollowDAO *dao.FollowDAO
	UserDAO   *dao.Users
}

func (s *FollowService) Follow(ctx context.Context, followingID, followedID int64) error {
	// 校验被关注用户是否存在
	exist, err := s.UserDAO.IsExist(ctx, "id = ?", followedID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("用户不存在")
	}

	// 唯一键保证并发重复关注只落一条，重复调用视为成功
	if _, err := s.FollowDAO.InsertIfAbsent(ctx, followingID, followedID); err != nil {
		return err
	}
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followingID, followedID int64) error {
	exist, err := s.UserDAO.IsExist(ctx, "id = ?", followedID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("用户不存在")
	}

	// 关系不存在时视为已取消，保持幂等
	if _, err := s.FollowDAO.DeleteByPair(ctx, followingID, followedID); err != nil {
		return err
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followingID, followedID int64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followingID, followedID)
}
