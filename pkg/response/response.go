package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 错误响应统一格式
type ErrorBody struct {
	Result       bool   `json:"result"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

// OK 成功响应，payload 自带 result 字段
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func Abort(c *gin.Context, httpStatus int, errType, msg string) {
	c.AbortWithStatusJSON(httpStatus, ErrorBody{
		Result:       false,
		ErrorType:    errType,
		ErrorMessage: msg,
	})
}
