package models

// 下载状态
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// DownloadRequest 下载请求
// type 和 quality 仅对 YouTube 生效
type DownloadRequest struct {
	URL     string `json:"url"`
	Type    string `json:"type" binding:"omitempty,oneof=video audio image"`
	Quality string `json:"quality" binding:"omitempty,max=16"`
}

// DownloadResult 标准化下载结果，对客户端唯一的约定
type DownloadResult struct {
	Status  string `json:"status"`
	URL     string `json:"url,omitempty"`
	Type    string `json:"type,omitempty"`
	Quality string `json:"quality,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Failed 构造失败结果
func Failed(reason string) DownloadResult {
	return DownloadResult{Status: StatusFailed, Reason: reason}
}

// FileRequest 文件代理请求
type FileRequest struct {
	MediaURL string `json:"mediaUrl"`
	Filename string `json:"filename" binding:"omitempty,max=255"`
}

// PlatformResponse 平台检测响应
type PlatformResponse struct {
	Platform  *string `json:"platform"`
	Supported bool    `json:"supported"`
}
