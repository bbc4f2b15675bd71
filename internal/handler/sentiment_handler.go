package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kokoro-chat-go/internal/service"
	"kokoro-chat-go/pkg/log"
)

// SentimentHandler 处理情感分析相关的 API 请求。
type SentimentHandler struct {
	sentimentService service.SentimentService
}

// NewSentimentHandler 创建一个新的 SentimentHandler 实例。
func NewSentimentHandler(sentimentService service.SentimentService) *SentimentHandler {
	return &SentimentHandler{sentimentService: sentimentService}
}

// AnalyzeRequest 定义了情感分析 API 的请求体结构。
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// Analyze 处理情感分析请求。
// 成功时直接返回分析结果本身，没有 success 包装。
func (h *SentimentHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("Analyze: 无效的请求体, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求体"})
		return
	}

	analysis, err := h.sentimentService.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		log.Warnf("Analyze: 分析失败, error: %v", err)
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}
