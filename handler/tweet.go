package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tweeter/pkg/context"
	"tweeter/pkg/log"
	"tweeter/pkg/response"
	"tweeter/service"
	"tweeter/types"
)

type Tweet struct {
	TweetService service.ITweetService
	FeedService  service.IFeedService
}

func (h *Tweet) RegisterRouter(r gin.IRouter) {
	g := r.Group("/tweets")
	g.POST("/", context.Wrap(h.CreateTweet))
	g.GET("/", context.Wrap(h.GetFeed))
	g.DELETE("/:id", context.Wrap(h.DeleteTweet))
}

// CreateTweet 发布推文
func (h *Tweet) CreateTweet(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	var req types.CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation("参数格式错误: " + err.Error())
	}

	tweetID, err := h.TweetService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}

	log.L.Info("tweet created", zap.Int64("user_id", userID), zap.Int64("tweet_id", tweetID))
	response.OK(c, types.CreateTweetResponse{Result: true, TweetID: tweetID})
	return nil
}

// GetFeed 信息流
func (h *Tweet) GetFeed(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	tweets, err := h.FeedService.Timeline(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.OK(c, types.FeedResponse{Result: true, Tweets: tweets})
	return nil
}

// DeleteTweet 删除推文
func (h *Tweet) DeleteTweet(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	var tweetID int64
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &tweetID); err != nil {
		return response.NewError(http.StatusBadRequest, response.TypeValidation, "id 格式错误")
	}

	if err := h.TweetService.Delete(c.Request.Context(), userID, tweetID); err != nil {
		return err
	}

	log.L.Info("tweet deleted", zap.Int64("user_id", userID), zap.Int64("tweet_id", tweetID))
	response.OK(c, types.ResultResponse{Result: true})
	return nil
}
