package utils

import (
	"path"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeFilename 清洗客户端文件名：去掉路径部分，空格转下划线，
// 只保留 [A-Za-z0-9_.-]，并去除首尾的点和下划线。
// 清洗结果可能为空串，调用方需要准备兜底名称。
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	return name
}
