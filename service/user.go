package service

import (
	"context"
	"fmt"

	"tweeter/dao"
	"tweeter/models"
	"tweeter/pkg/response"
	"tweeter/types"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Profile(ctx context.Context, userID int64) (*types.UserProfile, error)
}

type UserService struct {
	UserDAO   *dao.Users
	FollowDAO *dao.FollowDAO
}

// Profile 用户资料：粉丝列表与关注列表，一次批量查询补齐用户名
func (s *UserService) Profile(ctx context.Context, userID int64) (*types.UserProfile, error) {
	user, err := s.UserDAO.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NotFound("用户不存在")
	}

	followerIDs, err := s.FollowDAO.FindFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	followingIDs, err := s.FollowDAO.FindFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	idSet := make(map[int64]struct{}, len(followerIDs)+len(followingIDs))
	for _, id := range followerIDs {
		idSet[id] = struct{}{}
	}
	for _, id := range followingIDs {
		idSet[id] = struct{}{}
	}
	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.UserDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	toRefs := func(ids []int64) ([]types.UserRef, error) {
		refs := make([]types.UserRef, 0, len(ids))
		for _, id := range ids {
			u, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("user %d referenced by follow edge not found", id)
			}
			refs = append(refs, types.UserRef{ID: u.ID, Name: u.Name})
		}
		return refs, nil
	}

	followers, err := toRefs(followerIDs)
	if err != nil {
		return nil, err
	}
	following, err := toRefs(followingIDs)
	if err != nil {
		return nil, err
	}

	return &types.UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Followers: followers,
		Following: following,
	}, nil
}
