package models

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构，用于运维类接口
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Result 返回下载结果
func Result(c *gin.Context, code int, result DownloadResult) {
	c.JSON(code, result)
}

// Fail 返回失败结果
func Fail(c *gin.Context, code int, reason string) {
	c.JSON(code, Failed(reason))
}

// BadRequest 请求错误
func BadRequest(c *gin.Context, reason string) {
	Fail(c, http.StatusBadRequest, reason)
}

// BadGateway 上游错误
func BadGateway(c *gin.Context, reason string) {
	Fail(c, http.StatusBadGateway, reason)
}

// InternalError 服务器错误
func InternalError(c *gin.Context, reason string) {
	Fail(c, http.StatusInternalServerError, reason)
}
