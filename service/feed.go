package service

import (
	"context"
	"fmt"

	"tweeter/dao"
	"tweeter/models"
	"tweeter/types"
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	Timeline(ctx context.Context, viewerID int64) ([]*types.TweetView, error)
}

type FeedService struct {
	TweetDAO  *dao.TweetDAO
	FollowDAO *dao.FollowDAO
	LikeDAO   *dao.LikeDAO
	MediaDAO  *dao.MediaDAO
	UserDAO   *dao.Users
}

// Timeline 信息流：本人及关注用户（一跳）的推文，按创建时间倒序。
// 媒体、点赞、用户信息分别批量加载，避免逐行查询。
func (s *FeedService) Timeline(ctx context.Context, viewerID int64) ([]*types.TweetView, error) {
	following, err := s.FollowDAO.FindFollowing(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	authorIDs := append(following, viewerID)
	tweets, err := s.TweetDAO.FindByAuthorIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]*types.TweetView, 0, len(tweets))
	if len(tweets) == 0 {
		return views, nil
	}

	tweetIDs := make([]int64, 0, len(tweets))
	mediaIDSet := make(map[int64]struct{})
	userIDSet := make(map[int64]struct{})
	for _, t := range tweets {
		tweetIDs = append(tweetIDs, t.ID)
		userIDSet[t.UserID] = struct{}{}
		for _, mid := range t.Media {
			mediaIDSet[mid] = struct{}{}
		}
	}

	likes, err := s.LikeDAO.FindByTweetIDs(ctx, tweetIDs)
	if err != nil {
		return nil, err
	}
	likesByTweet := make(map[int64][]*models.Like, len(tweets))
	for _, l := range likes {
		likesByTweet[l.TweetID] = append(likesByTweet[l.TweetID], l)
		userIDSet[l.UserID] = struct{}{}
	}

	mediaByID, err := s.loadMedias(ctx, mediaIDSet)
	if err != nil {
		return nil, err
	}
	userByID, err := s.loadUsers(ctx, userIDSet)
	if err != nil {
		return nil, err
	}

	for _, t := range tweets {
		author, ok := userByID[t.UserID]
		if !ok {
			return nil, fmt.Errorf("tweet %d: author %d not found", t.ID, t.UserID)
		}

		// 附件与媒体ID列表位置对应，悬空ID保留为 null
		attachments := make([]*string, 0, len(t.Media))
		for _, mid := range t.Media {
			if m, ok := mediaByID[mid]; ok {
				link := m.Link
				attachments = append(attachments, &link)
			} else {
				attachments = append(attachments, nil)
			}
		}

		likeViews := make([]types.LikeView, 0, len(likesByTweet[t.ID]))
		for _, l := range likesByTweet[t.ID] {
			liker, ok := userByID[l.UserID]
			if !ok {
				return nil, fmt.Errorf("tweet %d: liker %d not found", t.ID, l.UserID)
			}
			likeViews = append(likeViews, types.LikeView{
				UserID: l.UserID,
				Name:   liker.Name,
			})
		}

		views = append(views, &types.TweetView{
			ID:          t.ID,
			Content:     t.Text,
			Attachments: attachments,
			Author:      types.UserRef{ID: author.ID, Name: author.Name},
			Likes:       likeViews,
		})
	}

	return views, nil
}

func (s *FeedService) loadMedias(ctx context.Context, idSet map[int64]struct{}) (map[int64]*models.Media, error) {
	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	medias, err := s.MediaDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*models.Media, len(medias))
	for _, m := range medias {
		byID[m.ID] = m
	}
	return byID, nil
}

func (s *FeedService) loadUsers(ctx context.Context, idSet map[int64]struct{}) (map[int64]*models.User, error) {
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
	return byID, nil
}
