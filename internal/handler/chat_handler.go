package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kokoro-chat-go/internal/service"
	"kokoro-chat-go/pkg/log"
)

// ChatHandler 处理聊天记录相关的 API 请求。
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler 创建一个新的 ChatHandler 实例。
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SaveChatRequest 定义了保存聊天记录 API 的请求体结构。
// 字段是否缺失由 service 层统一校验，这里只做反序列化。
type SaveChatRequest struct {
	Text              string          `json:"text"`
	Sentiment         string          `json:"sentiment"`
	Confidence        json.RawMessage `json:"confidence"`
	EffectType        string          `json:"effect_type"`
	EffectDescription string          `json:"effect_description"`
	SessionID         string          `json:"session_id"`
}

// SaveChat 处理保存聊天记录的请求。
func (h *ChatHandler) SaveChat(c *gin.Context) {
	var req SaveChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("SaveChat: 无效的请求体, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}

	chatID, err := h.chatService.Save(c.Request.Context(), service.SaveChatInput{
		Text:              req.Text,
		Sentiment:         req.Sentiment,
		Confidence:        req.Confidence,
		EffectType:        req.EffectType,
		EffectDescription: req.EffectDescription,
		SessionID:         req.SessionID,
	})
	if err != nil {
		log.Warnf("SaveChat: 保存失败, error: %v", err)
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"chat_id": chatID,
		"message": "聊天记录已保存",
	})
}

// ListChats 处理查询聊天记录列表的请求。
// 支持 session_id 过滤和 limit 条数上限（默认 50）。
func (h *ChatHandler) ListChats(c *gin.Context) {
	sessionID := c.Query("session_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	chats, err := h.chatService.List(c.Request.Context(), sessionID, limit)
	if err != nil {
		log.Error("ListChats: 查询失败", err)
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"chats":   chats,
	})
}

// DeleteChat 处理删除聊天记录的请求，记录不存在时同样返回成功。
func (h *ChatHandler) DeleteChat(c *gin.Context) {
	chatID := c.Param("chatId")

	if err := h.chatService.Delete(c.Request.Context(), chatID); err != nil {
		log.Error("DeleteChat: 删除失败", err)
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "聊天记录已删除",
	})
}
