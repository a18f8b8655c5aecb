package handler

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"socialdl/gateway/internal/models"
	"socialdl/gateway/internal/service"
	"socialdl/gateway/internal/utils"
)

// FileHandler 文件代理处理器
type FileHandler struct {
	fileService *service.FileService
}

// NewFileHandler 创建文件代理处理器
func NewFileHandler(fileService *service.FileService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
	}
}

// DownloadFile 代理下载媒体文件
func (h *FileHandler) DownloadFile(c *gin.Context) {
	var req models.FileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		models.BadRequest(c, "Bad request")
		return
	}
	if req.MediaURL == "" {
		models.BadRequest(c, "Missing mediaUrl")
		return
	}

	file, err := h.fileService.Fetch(c.Request.Context(), req.MediaURL, req.Filename)
	if err != nil {
		_ = c.Error(err)
		var statusErr *utils.UpstreamStatusError
		switch {
		case errors.Is(err, utils.ErrInvalidURL):
			models.BadRequest(c, "Invalid mediaUrl")
		case errors.As(err, &statusErr), errors.Is(err, utils.ErrMediaTooLarge):
			models.BadGateway(c, err.Error())
		default:
			models.InternalError(c, err.Error())
		}
		return
	}

	c.Header("Content-Disposition", contentDisposition(file.Filename))
	c.Header("Content-Length", strconv.Itoa(len(file.Data)))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// contentDisposition 构造附件头，非 ASCII 文件名按 RFC 2231 编码
func contentDisposition(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}
