package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"socialdl/gateway/internal/backend"
	"socialdl/gateway/internal/detector"
	"socialdl/gateway/internal/models"
	"socialdl/gateway/internal/utils"
)

// 请求未指定时转发给 YouTube 的默认值
const (
	DefaultType    = "video"
	DefaultQuality = "720p"
)

// Dispatcher 后端转发接口
type Dispatcher interface {
	Dispatch(ctx context.Context, platform detector.Platform, payload backend.Payload) (*backend.Response, error)
}

// DownloadService 下载解析服务
type DownloadService struct {
	detector   *detector.PlatformDetector
	dispatcher Dispatcher
	logger     *zap.Logger
}

// NewDownloadService 创建下载解析服务
func NewDownloadService(d *detector.PlatformDetector, dispatcher Dispatcher, logger *zap.Logger) *DownloadService {
	return &DownloadService{
		detector:   d,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Resolve 解析下载直链
// 总是返回一个结果；失败时 error 标明错误类别
func (s *DownloadService) Resolve(ctx context.Context, req models.DownloadRequest) (models.DownloadResult, error) {
	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		return models.Failed("Missing url"), utils.ErrInvalidURL
	}

	// 1. 检测平台，不支持的平台不发起请求
	platform := s.detector.Detect(rawURL)
	if !platform.Supported() {
		return models.Failed("Unsupported platform"), utils.ErrUnsupportedPlatform
	}

	// 2. 转发到后端
	payload := backend.Payload{
		URL:     rawURL,
		Type:    orDefault(req.Type, DefaultType),
		Quality: orDefault(req.Quality, DefaultQuality),
	}

	s.logger.Info("dispatching download",
		zap.String("platform", platform.String()),
		zap.String("url", rawURL))

	resp, err := s.dispatcher.Dispatch(ctx, platform, payload)
	if err != nil {
		s.logger.Warn("backend request failed",
			zap.String("platform", platform.String()),
			zap.Error(err))
		return models.Failed(err.Error()), err
	}

	// 3. 后端失败
	if !succeeded(resp) {
		reason := utils.StringField(resp.Body, "reason")
		if reason == "" {
			reason = "Download failed"
		}
		s.logger.Warn("backend reported failure",
			zap.String("platform", platform.String()),
			zap.Int("status_code", resp.StatusCode),
			zap.String("reason", reason))
		return models.Failed(reason), fmt.Errorf("%w: %s", utils.ErrUpstream, reason)
	}

	// 4. 提取直链
	link, ok := utils.ExtractDirectLink(resp.Body)
	if !ok {
		s.logger.Warn("backend returned no direct link", zap.String("platform", platform.String()))
		return models.Failed("No direct link returned."), utils.ErrMissingMediaLink
	}

	result := models.DownloadResult{
		Status:  models.StatusSuccess,
		URL:     link,
		Type:    firstNonEmpty(req.Type, utils.StringField(resp.Body, "type", "Type"), DefaultType),
		Quality: firstNonEmpty(utils.StringField(resp.Body, "Quality", "quality"), req.Quality),
	}

	s.logger.Info("download resolved",
		zap.String("platform", platform.String()),
		zap.String("type", result.Type))

	return result, nil
}

// Detect 检测平台
func (s *DownloadService) Detect(rawURL string) detector.Platform {
	return s.detector.Detect(strings.TrimSpace(rawURL))
}

// succeeded 后端响应是否成功
func succeeded(resp *backend.Response) bool {
	if resp == nil || resp.Body == nil {
		return false
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false
	}
	status, _ := resp.Body["status"].(string)
	return status == models.StatusSuccess
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
