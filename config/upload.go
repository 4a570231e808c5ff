package config

// Upload 媒体文件上传配置
type Upload struct {
	Dir string `json:"dir" yaml:"dir"`
}
