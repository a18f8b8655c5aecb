package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"socialdl/gateway/internal/backend"
	"socialdl/gateway/internal/config"
	"socialdl/gateway/internal/handler"
	"socialdl/gateway/internal/middleware"
	"socialdl/gateway/internal/service"
)

// Version 服务版本
const Version = "1.0.0"

// Dependencies 路由依赖
type Dependencies struct {
	Config          *config.Config
	Logger          *zap.Logger
	BackendClient   *backend.Client
	DownloadService *service.DownloadService
	FileService     *service.FileService
}

// SetupRouter 设置路由
func SetupRouter(deps *Dependencies) *gin.Engine {
	switch deps.Config.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(deps.Config.Server.Mode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger, deps.Config.Logging.SlowRequest))
	r.Use(middleware.CORS(&deps.Config.CORS))

	downloadHandler := handler.NewDownloadHandler(deps.DownloadService)
	fileHandler := handler.NewFileHandler(deps.FileService)
	platformHandler := handler.NewPlatformHandler(deps.DownloadService)
	healthHandler := handler.NewHealthHandler(deps.BackendClient, Version)

	// 健康检查
	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/version", healthHandler.Version)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/live", healthHandler.Live)

	// 下载
	r.POST("/download", downloadHandler.Download)
	r.POST("/download/file", fileHandler.DownloadFile)

	// 平台检测与分享入口
	r.GET("/platform", platformHandler.Detect)
	r.POST("/share", platformHandler.Share)

	return r
}
