package service

import (
	"context"

	"tweeter/dao"
	"tweeter/pkg/response"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID, tweetID int64) error
	Unlike(ctx context.Context, userID, tweetID int64) error
	IsLiked(ctx context.Context, userID, tweetID int64) (bool, error)
}

type LikeService struct {
	LikeDAO  *dao.LikeDAO
	TweetDAO *dao.TweetDAO
}

func (s *LikeService) Like(ctx context.Context, userID, tweetID int64) error {
	// 校验推文存在
	exist, err := s.TweetDAO.IsExist(ctx, "id = ?", tweetID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("推文不存在")
	}

	// 唯一键保证并发重复点赞只落一条，重复调用视为成功
	if _, err := s.LikeDAO.InsertIfAbsent(ctx, userID, tweetID); err != nil {
		return err
	}
	return nil
}

func (s *LikeService) Unlike(ctx context.Context, userID, tweetID int64) error {
	exist, err := s.TweetDAO.IsExist(ctx, "id = ?", tweetID)
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("推文不存在")
	}

	// 记录不存在时视为已删除，保持幂等
	if _, err := s.LikeDAO.DeleteByUserTweet(ctx, userID, tweetID); err != nil {
		return err
	}
	return nil
}

func (s *LikeService) IsLiked(ctx context.Context, userID, tweetID int64) (bool, error) {
	return s.LikeDAO.IsLiked(ctx, userID, tweetID)
}
