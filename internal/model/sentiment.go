package model

// SentimentScores 是情感分析四分类的置信度。
type SentimentScores struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Mixed    float64 `json:"mixed"`
}

// SentimentAnalysis 是 /analyze 接口的响应体。
type SentimentAnalysis struct {
	InputText string          `json:"inputText"`
	Sentiment string          `json:"sentiment"`
	Scores    SentimentScores `json:"scores"`
}
