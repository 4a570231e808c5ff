package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tweeter/pkg/context"
	"tweeter/pkg/log"
	"tweeter/pkg/response"
	"tweeter/service"
	"tweeter/types"
)

type Media struct {
	MediaService service.IMediaService
}

func (h *Media) RegisterRouter(r gin.IRouter) {
	g := r.Group("/medias")
	g.POST("/", context.Wrap(h.UploadMedia))
}

// UploadMedia 上传媒体文件
func (h *Media) UploadMedia(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未登录")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return response.Validation("缺少 file 文件字段")
	}

	mediaID, err := h.MediaService.Store(c.Request.Context(), userID, header)
	if err != nil {
		return err
	}

	log.L.Info("media uploaded", zap.Int64("user_id", userID), zap.Int64("media_id", mediaID))
	response.OK(c, types.UploadMediaResponse{Result: true, MediaID: mediaID})
	return nil
}
