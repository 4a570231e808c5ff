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

type Like struct {
	LikeService service.ILikeService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	g := r.Group("/tweets")
	g.POST("/:id/likes", context.Wrap(h.PutLike))
	g.DELETE("/:id/likes", context.Wrap(h.DeleteLike))
}

// PutLike 点赞，重复点赞幂等
func (h *Like) PutLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	var tweetID int64
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &tweetID); err != nil {
		return response.NewError(http.StatusBadRequest, response.TypeValidation, "id 格式错误")
	}

	if err := h.LikeService.Like(c.Request.Context(), userID, tweetID); err != nil {
		return err
	}

	log.L.Info("tweet liked", zap.Int64("user_id", userID), zap.Int64("tweet_id", tweetID))
	response.OK(c, types.ResultResponse{Result: true})
	return nil
}

// DeleteLike 取消点赞，记录不存在时也返回成功
func (h *Like) DeleteLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	var tweetID int64
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &tweetID); err != nil {
		return response.NewError(http.StatusBadRequest, response.TypeValidation, "id 格式错误")
	}

	if err := h.LikeService.Unlike(c.Request.Context(), userID, tweetID); err != nil {
		return err
	}

	log.L.Info("like removed", zap.Int64("user_id", userID), zap.Int64("tweet_id", tweetID))
	response.OK(c, types.ResultResponse{Result: true})
	return nil
}
