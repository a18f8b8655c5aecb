package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialdl/gateway/internal/models"
	"socialdl/gateway/internal/service"
	"socialdl/gateway/internal/utils"
)

// DownloadHandler 下载处理器
type DownloadHandler struct {
	downloadService *service.DownloadService
}

// NewDownloadHandler 创建下载处理器
func NewDownloadHandler(downloadService *service.DownloadService) *DownloadHandler {
	return &DownloadHandler{
		downloadService: downloadService,
	}
}

// Download 解析下载直链
func (h *DownloadHandler) Download(c *gin.Context) {
	var req models.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		models.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, err := h.downloadService.Resolve(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		models.Result(c, downloadStatusCode(err), result)
		return
	}

	models.Result(c, http.StatusOK, result)
}

// downloadStatusCode 错误类别 -> HTTP 状态码
func downloadStatusCode(err error) int {
	switch {
	case errors.Is(err, utils.ErrInvalidURL), errors.Is(err, utils.ErrUnsupportedPlatform):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
