package types

type CreateTweetRequest struct {
	TweetData     string  `json:"tweet_data"`
	TweetMediaIDs []int64 `json:"tweet_media_ids"`
}

type CreateTweetResponse struct {
	Result  bool  `json:"result"`
	TweetID int64 `json:"tweet_id"`
}

// ResultResponse 无负载的成功响应
type ResultResponse struct {
	Result bool `json:"result"`
}

// TweetView 信息流里的单条推文视图
type TweetView struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	// Attachments 与推文的媒体ID列表位置对应，悬空ID渲染为 null
	Attachments []*string  `json:"attachments"`
	Author      UserRef    `json:"author"`
	Likes       []LikeView `json:"likes"`
}

type LikeView struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

type FeedResponse struct {
	Result bool         `json:"result"`
	Tweets []*TweetView `json:"tweets"`
}
