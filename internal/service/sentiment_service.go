package service

import (
	"context"
	"strings"
	"time"

	"kokoro-chat-go/internal/apperr"
	"kokoro-chat-go/internal/config"
	"kokoro-chat-go/internal/model"
	"kokoro-chat-go/pkg/sentiment"
)

// SentimentService 定义了情感分析业务逻辑的接口。
type SentimentService interface {
	// Analyze 对一段文本做一次情感分析并转换为服务自身的响应结构。
	Analyze(ctx context.Context, text string) (*model.SentimentAnalysis, error)
}

type sentimentService struct {
	client       sentiment.Client
	languageCode string
	timeout      time.Duration
}

// NewSentimentService 创建一个新的 SentimentService。
// 语言代码固定取配置值，不做协商。
func NewSentimentService(client sentiment.Client, cfg config.SentimentConfig) SentimentService {
	return &sentimentService{
		client:       client,
		languageCode: cfg.LanguageCode,
		timeout:      time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

// Analyze 校验文本后调用上游服务，单次往返，不重试。
// 上游调用带超时，超时同样作为上游错误返回。
func (s *sentimentService) Analyze(ctx context.Context, text string) (*model.SentimentAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.New(apperr.Validation, "text 字段不能为空")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.client.DetectSentiment(ctx, text, s.languageCode)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "情感分析服务调用失败", err)
	}

	return &model.SentimentAnalysis{
		InputText: text,
		Sentiment: result.Sentiment,
		Scores: model.SentimentScores{
			Positive: result.Scores.Positive,
			Negative: result.Scores.Negative,
			Neutral:  result.Scores.Neutral,
			Mixed:    result.Scores.Mixed,
		},
	}, nil
}
