package service

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"tweeter/dao"
	"tweeter/models"
	"tweeter/pkg/response"
	"tweeter/pkg/snowflake"
	"tweeter/types"
)

var _ ITweetService = (*TweetService)(nil)

type ITweetService interface {
	Create(ctx context.Context, userID int64, req *types.CreateTweetRequest) (int64, error)
	Delete(ctx context.Context, actorID, tweetID int64) error
}

type TweetService struct {
	TweetDAO *dao.TweetDAO
}

// Create 发布推文
func (s *TweetService) Create(ctx context.Context, userID int64, req *types.CreateTweetRequest) (int64, error) {
	tweetID := snowflake.GenID()

	if req.TweetMediaIDs == nil {
		req.TweetMediaIDs = make([]int64, 0)
	}

	tweet := &models.Tweet{
		ID:        tweetID,
		UserID:    userID,
		Text:      req.TweetData,
		Media:     datatypes.NewJSONSlice(req.TweetMediaIDs),
		CreatedAt: time.Now(),
	}

	if err := s.TweetDAO.Create(ctx, tweet); err != nil {
		return 0, err
	}

	return tweetID, nil
}

// Delete 删除推文，级联删除其点赞记录
func (s *TweetService) Delete(ctx context.Context, actorID, tweetID int64) error {
	tweet, err := s.TweetDAO.FindByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet == nil {
		return response.NotFound("推文不存在")
	}

	// 只有作者本人可以删除
	if tweet.UserID != actorID {
		return response.Forbidden("无权删除他人推文")
	}

	return s.TweetDAO.DeleteWithLikes(ctx, tweetID)
}
