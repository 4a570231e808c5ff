package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"tweeter/config"
	"tweeter/dao"
	"tweeter/models"
	"tweeter/pkg/response"
)

// 只需要魔数正确即可通过类型嗅探
var pngBytes = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0}, 64)...)

func multipartFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func newMediaService(t *testing.T, mediaDAO *dao.MediaDAO, dir string) *MediaService {
	t.Helper()
	return &MediaService{
		MediaDAO: mediaDAO,
		Config: &config.Config{
			Upload: &config.Upload{Dir: dir},
		},
	}
}

func TestStoreMedia(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	dir := t.TempDir()

	a := createUser(t, db, "alice", "key-a")
	svc := newMediaService(t, dao.NewMediaDAO(db), dir)

	id, err := svc.Store(ctx, a.ID, multipartFile(t, "cat.png", pngBytes))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	var media models.Media
	if err := db.Where("id = ?", id).First(&media).Error; err != nil {
		t.Fatalf("media row missing: %v", err)
	}
	if media.Link != filepath.Join(dir, "cat.png") {
		t.Errorf("link: got %q", media.Link)
	}
	if _, err := os.Stat(media.Link); err != nil {
		t.Errorf("stored file missing: %v", err)
	}
}

func TestStoreMedia_SanitizesFilename(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	dir := t.TempDir()

	a := createUser(t, db, "alice", "key-a")
	svc := newMediaService(t, dao.NewMediaDAO(db), dir)

	id, err := svc.Store(ctx, a.ID, multipartFile(t, "../../evil.png", pngBytes))
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	var media models.Media
	if err := db.Where("id = ?", id).First(&media).Error; err != nil {
		t.Fatalf("media row missing: %v", err)
	}
	if media.Link != filepath.Join(dir, "evil.png") {
		t.Errorf("path traversal not neutralized: %q", media.Link)
	}
}

func TestStoreMedia_RejectsNonImage(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a := createUser(t, db, "alice", "key-a")
	svc := newMediaService(t, dao.NewMediaDAO(db), t.TempDir())

	_, err := svc.Store(ctx, a.ID, multipartFile(t, "notes.txt", []byte("just text, not an image")))
	var ae *response.APIError
	if !errors.As(err, &ae) || ae.Type != response.TypeValidation {
		t.Fatalf("expected Validation error, got %v", err)
	}
}
