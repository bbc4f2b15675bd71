package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticHandler 提供预构建前端资源的访问，无模板、无动态内容。
type StaticHandler struct {
	dir   string
	index string
}

// NewStaticHandler 创建一个新的 StaticHandler。
// dir 是前端构建产物目录，index 是根路径返回的入口文件名。
func NewStaticHandler(dir, index string) *StaticHandler {
	return &StaticHandler{dir: dir, index: index}
}

// Serve 作为 NoRoute 处理函数挂载，处理所有未匹配 API 路由的 GET 请求。
// 根路径返回入口文件，其余路径按文件名查找，不存在时返回 404。
func (h *StaticHandler) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.JSON(http.StatusNotFound, gin.H{"error": "资源不存在"})
		return
	}

	reqPath := c.Request.URL.Path
	if reqPath == "/" {
		c.File(filepath.Join(h.dir, h.index))
		return
	}

	// 规范化路径，拒绝目录穿越
	clean := filepath.Clean("/" + reqPath)
	full := filepath.Join(h.dir, clean)
	if !strings.HasPrefix(full, filepath.Clean(h.dir)+string(os.PathSeparator)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "资源不存在"})
		return
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"error": "资源不存在"})
		return
	}
	c.File(full)
}
