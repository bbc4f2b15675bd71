// Package sentiment provides a client for the external sentiment analysis service.
package sentiment

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/comprehend/types"

	"kokoro-chat-go/internal/config"
)

// Scores 是上游返回的四分类情感置信度。
type Scores struct {
	Positive float64
	Negative float64
	Neutral  float64
	Mixed    float64
}

// Result 是一次情感检测的结果。
type Result struct {
	Sentiment string
	Scores    Scores
}

// Client 定义了情感检测客户端的接口。
type Client interface {
	// DetectSentiment 对一段文本做一次阻塞式情感检测。
	DetectSentiment(ctx context.Context, text, languageCode string) (*Result, error)
}

type comprehendClient struct {
	api *comprehend.Client
}

// NewClient 基于静态凭证和配置的区域创建一个 AWS Comprehend 客户端。
func NewClient(ctx context.Context, cfg config.SentimentConfig) (Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("加载 AWS 配置失败: %w", err)
	}

	return &comprehendClient{api: comprehend.NewFromConfig(awsCfg)}, nil
}

// DetectSentiment 调用 Comprehend 的 DetectSentiment 接口并转换为内部结构。
func (c *comprehendClient) DetectSentiment(ctx context.Context, text, languageCode string) (*Result, error) {
	out, err := c.api.DetectSentiment(ctx, &comprehend.DetectSentimentInput{
		Text:         aws.String(text),
		LanguageCode: types.LanguageCode(languageCode),
	})
	if err != nil {
		return nil, fmt.Errorf("调用 DetectSentiment 失败: %w", err)
	}

	result := &Result{Sentiment: string(out.Sentiment)}
	if score := out.SentimentScore; score != nil {
		result.Scores = Scores{
			Positive: float64(aws.ToFloat32(score.Positive)),
			Negative: float64(aws.ToFloat32(score.Negative)),
			Neutral:  float64(aws.ToFloat32(score.Neutral)),
			Mixed:    float64(aws.ToFloat32(score.Mixed)),
		}
	}
	return result, nil
}
