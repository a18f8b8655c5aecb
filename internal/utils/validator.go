package utils

import (
	"net/url"
	"strings"
)

// IsValidURL 验证URL是否为带主机名的 http/https 地址
func IsValidURL(rawURL string) bool {
	if rawURL == "" {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// SanitizeFilename 清理文件名
// 去掉路径部分、控制字符和引号，折叠连续空白
func SanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20 || r == 0x7f:
			return -1
		case r == '"':
			return '\''
		}
		return r
	}, name)

	return strings.Join(strings.Fields(name), " ")
}
