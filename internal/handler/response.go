// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kokoro-chat-go/internal/apperr"
)

// fail 把 service 层返回的错误一次性映射为 HTTP 响应。
// 校验错误映射为 400，其余（上游失败、存储失败）映射为 500。
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if apperr.KindOf(err) == apperr.Validation {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
