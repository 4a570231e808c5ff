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

type User struct {
	UserService   service.IUserService
	FollowService service.IFollowService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/users")
	g.GET("/me", context.Wrap(h.MyProfile))
	g.GET("/:id", context.Wrap(h.GetProfile))
	g.POST("/:id/follow", context.Wrap(h.FollowUser))
	g.DELETE("/:id/follow", context.Wrap(h.UnfollowUser))
}

// MyProfile 查看本人资料
func (h *User) MyProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	profile, err := h.UserService.Profile(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	response.OK(c, types.ProfileResponse{Result: true, User: profile})
	return nil
}

// GetProfile 查看指定用户资料
func (h *User) GetProfile(c *gin.Context) error {
	var targetID int64
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &targetID); err != nil {
		return response.NewError(http.StatusBadRequest, response.TypeValidation, "id 格式错误")
	}

	profile, err := h.UserService.Profile(c.Request.Context(), targetID)
	if err != nil {
		return err
	}

	response.OK(c, types.ProfileResponse{Result: true, User: profile})
	return nil
}

// FollowUser 关注用户
func (h *User) FollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	var targetID int64
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &targetID); err != nil {
		return response.NewError(http.StatusBadRequest, response.TypeValidation, "id 格式错误")
	}

	if err := h.FollowService.Follow(c.Request.Context(), userID, targetID); err != nil {
		return err
	}

	log.L.Info("user followed", zap.Int64("user_id", userID), zap.Int64("target_id", targetID))
	response.OK(c, types.ResultResponse{Result: true})
	return nil
}

// UnfollowUser 取消关注，关系不存在时也返回成功
func (h *User) UnfollowUser(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	var targetID int64
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &targetID); err != nil {
		return response.NewError(http.StatusBadRequest, response.TypeValidation, "id 格式错误")
	}

	if err := h.FollowService.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		return err
	}

	log.L.Info("user unfollowed", zap.Int64("user_id", userID), zap.Int64("target_id", targetID))
	response.OK(c, types.ResultResponse{Result: true})
	return nil
}
