package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"socialdl/gateway/internal/models"
	"socialdl/gateway/internal/service"
)

// PlatformHandler 平台检测与分享处理器
type PlatformHandler struct {
	downloadService *service.DownloadService
}

// NewPlatformHandler 创建平台处理器
func NewPlatformHandler(downloadService *service.DownloadService) *PlatformHandler {
	return &PlatformHandler{
		downloadService: downloadService,
	}
}

// Detect 检测链接所属平台
func (h *PlatformHandler) Detect(c *gin.Context) {
	platform := h.downloadService.Detect(c.Query("url"))

	resp := models.PlatformResponse{Supported: platform.Supported()}
	if platform.Supported() {
		name := platform.String()
		resp.Platform = &name
	}
	c.JSON(http.StatusOK, resp)
}

// Share 分享入口，把分享的链接带回首页
func (h *PlatformHandler) Share(c *gin.Context) {
	shared := strings.TrimSpace(c.PostForm("url"))
	if shared == "" {
		shared = strings.TrimSpace(c.PostForm("text"))
	}
	if shared == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	q := url.Values{}
	q.Set("url", shared)
	c.Redirect(http.StatusSeeOther, "/?"+q.Encode())
}
