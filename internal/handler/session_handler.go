package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kokoro-chat-go/internal/service"
	"kokoro-chat-go/pkg/log"
)

// SessionHandler 处理会话相关的 API 请求。
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler 创建一个新的 SessionHandler 实例。
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// CreateSessionRequest 定义了创建会话 API 的请求体结构。
type CreateSessionRequest struct {
	Name string `json:"name"`
}

// CreateSession 处理创建会话的请求。
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("CreateSession: 无效的请求体, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}

	sessionID, err := h.sessionService.Create(c.Request.Context(), req.Name)
	if err != nil {
		log.Warnf("CreateSession: 创建失败, error: %v", err)
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"session_id": sessionID,
		"message":    "会话已创建",
	})
}

// ListSessions 处理查询会话列表的请求。
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		log.Error("ListSessions: 查询失败", err)
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"sessions": sessions,
	})
}

// DeleteSession 处理删除会话的请求，会话不存在时同样返回成功。
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	sessionID := c.Param("sessionId")

	if err := h.sessionService.Delete(c.Request.Context(), sessionID); err != nil {
		log.Error("DeleteSession: 删除失败", err)
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "会话已删除",
	})
}
