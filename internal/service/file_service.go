package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"socialdl/gateway/internal/config"
	"socialdl/gateway/internal/utils"
)

const (
	defaultFilename    = "download"
	defaultContentType = "application/octet-stream"
)

// ProxiedFile 代理下载的文件
type ProxiedFile struct {
	Data        []byte
	ContentType string
	Filename    string
}

// FileService 文件代理服务
// 服务端拉取媒体文件，绕过浏览器跨域限制
type FileService struct {
	client  *http.Client
	timeout time.Duration
	maxSize int64
	logger  *zap.Logger
}

// NewFileService 创建文件代理服务
func NewFileService(cfg *config.FileProxyConfig, logger *zap.Logger) *FileService {
	return &FileService{
		client:  &http.Client{},
		timeout: cfg.Timeout,
		maxSize: cfg.MaxSize,
		logger:  logger,
	}
}

// Fetch 拉取媒体文件并完整缓存在内存中
func (s *FileService) Fetch(ctx context.Context, mediaURL, filename string) (*ProxiedFile, error) {
	mediaURL = strings.TrimSpace(mediaURL)
	if !utils.IsValidURL(mediaURL) {
		return nil, utils.ErrInvalidURL
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidURL, err)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, s.wrapError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn("media host returned error",
			zap.String("url", mediaURL),
			zap.Int("status_code", resp.StatusCode))
		return nil, &utils.UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	if s.maxSize > 0 && resp.ContentLength > s.maxSize {
		return nil, fmt.Errorf("%w: %d bytes", utils.ErrMediaTooLarge, resp.ContentLength)
	}

	body := io.Reader(resp.Body)
	if s.maxSize > 0 {
		body = io.LimitReader(resp.Body, s.maxSize+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, s.wrapError(ctx, err)
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", utils.ErrMediaTooLarge, s.maxSize)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	file := &ProxiedFile{
		Data:        data,
		ContentType: contentType,
		Filename:    SuggestFilename(filename, contentType),
	}

	s.logger.Info("media proxied",
		zap.String("filename", file.Filename),
		zap.String("content_type", contentType),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)))

	return file, nil
}

// SuggestFilename 生成下载文件名，并按内容类型修正扩展名
func SuggestFilename(filename, contentType string) string {
	if i := strings.Index(filename, "?"); i >= 0 {
		filename = filename[:i]
	}
	name := utils.SanitizeFilename(filename)
	if name == "" {
		name = defaultFilename
	}
	return utils.FixFilenameExt(name, utils.ExtFromContentType(contentType))
}

// wrapError 区分超时与其他网络错误
func (s *FileService) wrapError(ctx context.Context, err error) error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: media host did not respond within %s", utils.ErrUpstreamTimeout, s.timeout)
	}
	return fmt.Errorf("%w: %v", utils.ErrUpstream, err)
}
