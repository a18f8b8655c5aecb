package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"socialdl/gateway/internal/models"
)

// Pinger 依赖探测接口
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler 健康检查处理器
type HealthHandler struct {
	backend   Pinger
	startTime time.Time
	version   string
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(backend Pinger, version string) *HealthHandler {
	return &HealthHandler{
		backend:   backend,
		startTime: time.Now(),
		version:   version,
	}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       int64             `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

// HealthCheck 健康检查
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dependencies := make(map[string]string)
	status := "healthy"
	statusCode := http.StatusOK

	// 检查后端服务
	if err := h.backend.Ping(ctx); err != nil {
		dependencies["backend"] = "unreachable"
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	} else {
		dependencies["backend"] = "healthy"
	}

	c.JSON(statusCode, HealthResponse{
		Status:       status,
		Version:      h.version,
		Uptime:       int64(time.Since(h.startTime).Seconds()),
		Dependencies: dependencies,
	})
}

// Version 版本信息
func (h *HealthHandler) Version(c *gin.Context) {
	models.Success(c, gin.H{
		"version": h.version,
		"service": "socialdl-gateway",
	})
}

// Ready 就绪检查
// 服务无状态，进程能处理请求即就绪
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// Live 存活检查
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
