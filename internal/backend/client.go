package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"socialdl/gateway/internal/config"
	"socialdl/gateway/internal/detector"
	"socialdl/gateway/internal/utils"
)

// 后端响应体上限，直链响应只是一小段 JSON
const maxResponseBytes = 1 << 20

// routes 平台 -> 后端路由
var routes = map[detector.Platform]string{
	detector.Instagram: "/insta",
	detector.YouTube:   "/yt",
	detector.TikTok:    "/tiktok",
	detector.Spotify:   "/spotify",
	detector.Facebook:  "/facebook",
	detector.Pinterest: "/pinterest",
}

// Route 返回平台对应的后端路由
func Route(p detector.Platform) (string, bool) {
	r, ok := routes[p]
	return r, ok
}

// Payload 发往后端的请求体
type Payload struct {
	URL     string `json:"url"`
	Type    string `json:"type,omitempty"`
	Quality string `json:"quality,omitempty"`
}

// Response 后端响应
// 字段名不固定，保留为无类型映射
type Response struct {
	StatusCode int
	Body       map[string]any
}

// Client 后端服务客户端
type Client struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewClient 创建后端客户端
func NewClient(cfg *config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		client:  &http.Client{},
	}
}

// BaseURL 后端地址
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Dispatch 把请求转发到平台对应的后端路由
// 只有 YouTube 转发 type 和 quality，单次请求，不重试
func (c *Client) Dispatch(ctx context.Context, platform detector.Platform, payload Payload) (*Response, error) {
	route, ok := Route(platform)
	if !ok {
		return nil, utils.ErrUnsupportedPlatform
	}

	if platform != detector.YouTube {
		payload = Payload{URL: payload.URL}
	}

	return c.post(ctx, route, payload)
}

// post 发送 JSON 请求并解析响应
func (c *Client) post(ctx context.Context, route string, body any) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.wrapTransportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, c.wrapTransportError(ctx, err)
	}

	result := &Response{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(raw, &result.Body); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			// 非 2xx 且不是 JSON，交由调用方按失败处理
			return result, nil
		}
		return nil, fmt.Errorf("%w: invalid backend response: %v", utils.ErrUpstream, err)
	}

	return result, nil
}

// wrapTransportError 区分超时与其他网络错误
func (c *Client) wrapTransportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || isTimeout(err) {
		return fmt.Errorf("%w: backend did not respond within %s", utils.ErrUpstreamTimeout, c.timeout)
	}
	return fmt.Errorf("%w: %v", utils.ErrUpstream, err)
}

// Ping 探测后端是否可达，任何 HTTP 响应都视为可达
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	resp.Body.Close()
	return nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
