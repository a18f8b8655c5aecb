package detector

import (
	"net/url"
	"strings"
)

// Platform 平台标识
type Platform string

const (
	// Unknown 未识别的平台
	Unknown   Platform = ""
	Instagram Platform = "instagram"
	YouTube   Platform = "youtube"
	TikTok    Platform = "tiktok"
	Spotify   Platform = "spotify"
	Facebook  Platform = "facebook"
	Pinterest Platform = "pinterest"
)

// hostRule 平台域名白名单
type hostRule struct {
	platform Platform
	hosts    map[string]struct{}
}

func newHostRule(p Platform, hosts ...string) hostRule {
	set := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		set[h] = struct{}{}
	}
	return hostRule{platform: p, hosts: set}
}

// PlatformDetector 平台检测器
// 仅做完整域名匹配，不匹配后缀或任意子域名
type PlatformDetector struct {
	rules []hostRule
}

// NewPlatformDetector 创建平台检测器
func NewPlatformDetector() *PlatformDetector {
	return &PlatformDetector{
		// 按顺序匹配，先命中者优先
		rules: []hostRule{
			newHostRule(Instagram, "instagram.com", "www.instagram.com", "instagr.am", "www.instagr.am"),
			newHostRule(YouTube, "youtube.com", "www.youtube.com", "m.youtube.com", "youtu.be"),
			newHostRule(TikTok, "tiktok.com", "www.tiktok.com", "vm.tiktok.com", "m.tiktok.com"),
			newHostRule(Spotify, "spotify.com", "open.spotify.com", "www.spotify.com"),
			newHostRule(Facebook, "facebook.com", "www.facebook.com", "m.facebook.com", "fb.watch", "fb.com", "www.fb.com"),
			newHostRule(Pinterest, "pinterest.com", "www.pinterest.com", "pin.it"),
		},
	}
}

// Detect 检测URL所属平台，无法解析或不支持时返回 Unknown
func (d *PlatformDetector) Detect(rawURL string) Platform {
	if rawURL == "" {
		return Unknown
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Unknown
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return Unknown
	}

	for _, rule := range d.rules {
		if _, ok := rule.hosts[host]; ok {
			return rule.platform
		}
	}
	return Unknown
}

// Platforms 返回所有支持的平台
func (d *PlatformDetector) Platforms() []Platform {
	result := make([]Platform, 0, len(d.rules))
	for _, rule := range d.rules {
		result = append(result, rule.platform)
	}
	return result
}

// Supported 是否为已识别平台
func (p Platform) Supported() bool {
	return p != Unknown
}

func (p Platform) String() string {
	return string(p)
}
