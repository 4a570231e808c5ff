package types

type UploadMediaResponse struct {
	Result  bool  `json:"result"`
	MediaID int64 `json:"media_id"`
}
