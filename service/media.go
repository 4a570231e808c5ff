package service

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"

	"tweeter/config"
	"tweeter/dao"
	"tweeter/models"
	"tweeter/pkg/response"
	"tweeter/pkg/snowflake"
	"tweeter/pkg/utils"
)

var _ IMediaService = (*MediaService)(nil)

type IMediaService interface {
	Store(ctx context.Context, userID int64, header *multipart.FileHeader) (int64, error)
}

type MediaService struct {
	MediaDAO *dao.MediaDAO
	Config   *config.Config
}

const maxMediaSize = 10 << 20 // 10MB

// Store 保存上传的媒体文件并落库，返回媒体ID
func (s *MediaService) Store(ctx context.Context, userID int64, header *multipart.FileHeader) (int64, error) {
	if header.Size <= 0 || header.Size > maxMediaSize {
		return 0, response.Validation("文件大小超出限制")
	}

	f, err := header.Open()
	if err != nil {
		return 0, err
	}
	defer f.Close()

	kind, err := filetype.MatchReader(f)
	if err != nil {
		return 0, err
	}
	if kind != matchers.TypeJpeg && kind != matchers.TypePng {
		return 0, response.Validation("仅支持 png/jpeg 图片")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	name := utils.SanitizeFilename(header.Filename)
	if name == "" {
		name = uuid.NewString() + "." + kind.Extension
	}

	if err := os.MkdirAll(s.Config.Upload.Dir, 0o755); err != nil {
		return 0, err
	}

	// 同名文件会相互覆盖
	link := filepath.Join(s.Config.Upload.Dir, name)
	dst, err := os.Create(link)
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, f); err != nil {
		return 0, err
	}

	media := &models.Media{
		ID:        snowflake.GenID(),
		Link:      link,
		CreatedAt: time.Now(),
	}
	if err := s.MediaDAO.Create(ctx, media); err != nil {
		return 0, err
	}

	return media.ID, nil
}
