package utils

import (
	"strings"
)

// DirectLinkFields 后端历史上使用过的直链字段名，按优先级排列
// 顺序与后端行为绑定，不要调整
var DirectLinkFields = []string{
	"ViDeO_LiNk_DeReCT",
	"Video_Url",
	"Audio_Url",
	"AuDiO_LiNk_DeReCT",
	"video",
	"audio",
}

// ExtractDirectLink 从后端响应中按优先级提取第一个非空直链
func ExtractDirectLink(payload map[string]any) (string, bool) {
	for _, field := range DirectLinkFields {
		if v := StringField(payload, field); v != "" {
			return v, true
		}
	}
	return "", false
}

// StringField 读取字符串字段，缺失或类型不符时返回空串
func StringField(payload map[string]any, keys ...string) string {
	for _, key := range keys {
		raw, ok := payload[key]
		if !ok || raw == nil {
			continue
		}
		if s, ok := raw.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// extRule 内容类型片段 -> 扩展名
type extRule struct {
	needle string
	ext    string
}

// 按顺序做子串匹配，"mpeg" 必须在 "mp3" 之前
var contentTypeExts = []extRule{
	{"mp4", "mp4"},
	{"webm", "webm"},
	{"mpeg", "mp3"},
	{"mp3", "mp3"},
	{"ogg", "ogg"},
	{"wav", "wav"},
	{"m4a", "m4a"},
	{"jpeg", "jpg"},
	{"jpg", "jpg"},
	{"png", "png"},
	{"gif", "gif"},
	{"webp", "webp"},
	{"pdf", "pdf"},
}

// ExtFromContentType 根据 Content-Type 推断扩展名(不含点)，未知类型返回空串
func ExtFromContentType(contentType string) string {
	contentType = strings.ToLower(contentType)
	if contentType == "" {
		return ""
	}
	for _, rule := range contentTypeExts {
		if strings.Contains(contentType, rule.needle) {
			return rule.ext
		}
	}
	return ""
}

// FixFilenameExt 确保文件名带有与内容类型一致的扩展名
//   - 无扩展名时追加
//   - 扩展名不一致时替换
//   - ext 为空时保持原样
func FixFilenameExt(filename, ext string) string {
	if ext == "" {
		return filename
	}

	dot := strings.LastIndex(filename, ".")
	if dot < 0 {
		return filename + "." + ext
	}
	if strings.EqualFold(filename[dot+1:], ext) {
		return filename
	}
	return filename[:dot] + "." + ext
}
