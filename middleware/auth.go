package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tweeter/dao"
	"tweeter/pkg/context"
	"tweeter/pkg/log"
	"tweeter/pkg/response"
)

// Auth 根据 api-key 请求头解析用户身份，每次请求都查库，不做缓存
func Auth(users *dao.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("api-key")
		if apiKey == "" {
			response.Abort(c, 401, response.TypeUnauthorized, "缺少 api-key")
			return
		}

		user, err := users.FindByApiKey(c.Request.Context(), apiKey)
		if err != nil {
			response.Abort(c, 500, response.TypeInternal, err.Error())
			return
		}
		if user == nil {
			log.L.Warn("unknown api-key", zap.String("path", c.FullPath()))
			response.Abort(c, 401, response.TypeUnauthorized, "api-key 无效")
			return
		}

		c.Set(context.CtxUserID, user.ID)

		c.Next()
	}
}
