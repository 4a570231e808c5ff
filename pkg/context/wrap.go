package context

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tweeter/pkg/response"
)

const (
	CtxUserID = "user_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var ae *response.APIError
			if errors.As(err, &ae) {
				c.JSON(ae.Status, response.ErrorBody{
					Result:       false,
					ErrorType:    ae.Type,
					ErrorMessage: ae.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.ErrorBody{
				Result:       false,
				ErrorType:    response.TypeInternal,
				ErrorMessage: err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}
