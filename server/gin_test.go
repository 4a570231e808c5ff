package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tweeter/config"
	"tweeter/dao"
	"tweeter/handler"
	"tweeter/models"
	"tweeter/pkg/snowflake"
	"tweeter/service"
	"tweeter/types"
)

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Tweet{},
		&models.Media{},
		&models.Like{},
		&models.Follow{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		App:    &config.App{Env: "test"},
		Server: &config.Server{Http: 0},
		Upload: &config.Upload{Dir: t.TempDir()},
	}

	users := dao.NewUsers(db)
	tweetDAO := dao.NewTweetDAO(db)
	mediaDAO := dao.NewMediaDAO(db)
	likeDAO := dao.NewLikeDAO(db)
	followDAO := dao.NewFollowDAO(db)

	handlers := &Handlers{
		Tweet: &handler.Tweet{
			TweetService: &service.TweetService{TweetDAO: tweetDAO},
			FeedService: &service.FeedService{
				TweetDAO:  tweetDAO,
				FollowDAO: followDAO,
				LikeDAO:   likeDAO,
				MediaDAO:  mediaDAO,
				UserDAO:   users,
			},
		},
		Media: &handler.Media{
			MediaService: &service.MediaService{MediaDAO: mediaDAO, Config: cfg},
		},
		Like: &handler.Like{
			LikeService: &service.LikeService{LikeDAO: likeDAO, TweetDAO: tweetDAO},
		},
		User: &handler.User{
			UserService:   &service.UserService{UserDAO: users, FollowDAO: followDAO},
			FollowService: &service.FollowService{FollowDAO: followDAO, UserDAO: users},
		},
	}

	return NewGinEngine(handlers, users), db
}

func seedUser(t *testing.T, db *gorm.DB, name, apiKey string) *models.User {
	t.Helper()
	u := &models.User{ID: snowflake.GenID(), Name: name, ApiKey: apiKey}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return u
}

func doJSON(t *testing.T, e *gin.Engine, method, path, apiKey string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("api-key", apiKey)
	}

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestAuth_MissingKey(t *testing.T) {
	e, _ := newTestApp(t)

	w := doJSON(t, e, http.MethodGet, "/api/tweets/", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", w.Code)
	}

	body := decode[map[string]any](t, w)
	if body["result"] != false || body["error_type"] != "Unauthorized" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAuth_UnknownKey(t *testing.T) {
	e, _ := newTestApp(t)

	w := doJSON(t, e, http.MethodGet, "/api/tweets/", "bogus", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", w.Code)
	}
}

func TestFeed_EmptyGraph(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "alice", "key-a")

	w := doJSON(t, e, http.MethodGet, "/api/tweets/", "key-a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body.String())
	}

	feed := decode[types.FeedResponse](t, w)
	if !feed.Result {
		t.Fatal("expected result true")
	}
	if feed.Tweets == nil || len(feed.Tweets) != 0 {
		t.Fatalf("expected empty tweets array, got %+v", feed.Tweets)
	}
}

func TestTweet_PostAndDelete(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "alice", "key-a")

	w := doJSON(t, e, http.MethodPost, "/api/tweets/", "key-a",
		types.CreateTweetRequest{TweetData: "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("post status: got %d, body %s", w.Code, w.Body.String())
	}
	created := decode[types.CreateTweetResponse](t, w)
	if !created.Result || created.TweetID == 0 {
		t.Fatalf("unexpected create response: %+v", created)
	}

	w = doJSON(t, e, http.MethodGet, "/api/tweets/", "key-a", nil)
	feed := decode[types.FeedResponse](t, w)
	if len(feed.Tweets) != 1 || feed.Tweets[0].Content != "hello" {
		t.Fatalf("posted tweet missing from feed: %+v", feed.Tweets)
	}

	w = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/tweets/%d", created.TweetID), "key-a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status: got %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, e, http.MethodGet, "/api/tweets/", "key-a", nil)
	feed = decode[types.FeedResponse](t, w)
	if len(feed.Tweets) != 0 {
		t.Fatalf("deleted tweet still in feed: %+v", feed.Tweets)
	}
}

func TestTweet_DeleteForeignForbidden(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "alice", "key-a")
	seedUser(t, db, "bob", "key-b")

	w := doJSON(t, e, http.MethodPost, "/api/tweets/", "key-a",
		types.CreateTweetRequest{TweetData: "mine"})
	created := decode[types.CreateTweetResponse](t, w)

	w = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/tweets/%d", created.TweetID), "key-b", nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status: got %d, want 403", w.Code)
	}
}

// A 关注 B，B 发推 "hi"，A 点赞；A 的信息流应有这一条，作者 B，点赞人 A
func TestFeed_FollowLikeScenario(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "alice", "key-a")
	b := seedUser(t, db, "bob", "key-b")

	w := doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", b.ID), "key-a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("follow status: got %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, e, http.MethodPost, "/api/tweets/", "key-b",
		types.CreateTweetRequest{TweetData: "hi"})
	created := decode[types.CreateTweetResponse](t, w)

	w = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/tweets/%d/likes", created.TweetID), "key-a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("like status: got %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, e, http.MethodGet, "/api/tweets/", "key-a", nil)
	feed := decode[types.FeedResponse](t, w)
	if len(feed.Tweets) != 1 {
		t.Fatalf("expected one tweet, got %+v", feed.Tweets)
	}
	tw := feed.Tweets[0]
	if tw.Content != "hi" || tw.Author.ID != b.ID || tw.Author.Name != "bob" {
		t.Errorf("tweet view: %+v", tw)
	}
	if len(tw.Likes) != 1 || tw.Likes[0].Name != "alice" {
		t.Errorf("likes: %+v", tw.Likes)
	}

	// 取消不存在的点赞也应返回成功
	w = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/tweets/%d/likes", created.TweetID), "key-b", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("unlike status: got %d", w.Code)
	}
}

func TestProfile_Endpoints(t *testing.T) {
	e, db := newTestApp(t)
	a := seedUser(t, db, "alice", "key-a")
	b := seedUser(t, db, "bob", "key-b")

	doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", b.ID), "key-a", nil)
	doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/users/%d/follow", a.ID), "key-b", nil)

	w := doJSON(t, e, http.MethodGet, "/api/users/me", "key-a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me status: got %d, body %s", w.Code, w.Body.String())
	}
	me := decode[types.ProfileResponse](t, w)
	if me.User == nil || me.User.ID != a.ID {
		t.Fatalf("me profile: %+v", me.User)
	}
	if len(me.User.Followers) != 1 || me.User.Followers[0].ID != b.ID {
		t.Errorf("followers: %+v", me.User.Followers)
	}
	if len(me.User.Following) != 1 || me.User.Following[0].ID != b.ID {
		t.Errorf("following: %+v", me.User.Following)
	}

	w = doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/users/%d", b.ID), "key-a", nil)
	other := decode[types.ProfileResponse](t, w)
	if other.User == nil || other.User.Name != "bob" {
		t.Fatalf("other profile: %+v", other.User)
	}

	w = doJSON(t, e, http.MethodGet, "/api/users/999999", "key-a", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown user status: got %d, want 404", w.Code)
	}
}

func TestMedia_UploadAndAttach(t *testing.T) {
	e, db := newTestApp(t)
	seedUser(t, db, "alice", "key-a")

	pngBytes := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "cat.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	fw.Write(pngBytes)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/medias/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("api-key", "key-a")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("upload status: got %d, body %s", w.Code, w.Body.String())
	}
	uploaded := decode[types.UploadMediaResponse](t, w)
	if !uploaded.Result || uploaded.MediaID == 0 {
		t.Fatalf("upload response: %+v", uploaded)
	}

	w2 := doJSON(t, e, http.MethodPost, "/api/tweets/", "key-a",
		types.CreateTweetRequest{TweetData: "with pic", TweetMediaIDs: []int64{uploaded.MediaID}})
	if w2.Code != http.StatusOK {
		t.Fatalf("post status: got %d, body %s", w2.Code, w2.Body.String())
	}

	w2 = doJSON(t, e, http.MethodGet, "/api/tweets/", "key-a", nil)
	feed := decode[types.FeedResponse](t, w2)
	if len(feed.Tweets) != 1 {
		t.Fatalf("feed: %+v", feed.Tweets)
	}
	att := feed.Tweets[0].Attachments
	if len(att) != 1 || att[0] == nil || !strings.HasSuffix(*att[0], "cat.png") {
		t.Fatalf("attachments: %+v", att)
	}
}
