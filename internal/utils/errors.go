package utils

import (
	"errors"
	"fmt"
)

var (
	// 请求相关错误
	ErrInvalidURL          = errors.New("invalid URL")
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// 上游相关错误
	ErrUpstreamTimeout  = errors.New("upstream timeout")
	ErrUpstream         = errors.New("upstream error")
	ErrMissingMediaLink = errors.New("no direct link returned")
	ErrMediaTooLarge    = errors.New("media exceeds size limit")
)

// UpstreamStatusError 上游返回非成功状态码
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("Failed to fetch media (status %d)", e.StatusCode)
}

func (e *UpstreamStatusError) Unwrap() error {
	return ErrUpstream
}
