// Package config 负责加载和管理应用程序的配置。
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
// 配置在启动时加载一次，之后通过显式传参注入各层，不使用包级全局变量。
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	Sentiment SentimentConfig `mapstructure:"sentiment"`
	Static    StaticConfig    `mapstructure:"static"`
}

// ServerConfig 存储 HTTP 服务器相关的配置。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig 存储数据库连接的配置。
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
}

// MySQLConfig 存储 MySQL 数据库的配置。
type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// SentimentConfig 存储情感分析上游服务（AWS Comprehend）的配置。
// AccessKeyID 和 SecretAccessKey 不写入 YAML，从环境变量读取。
type SentimentConfig struct {
	Region          string `mapstructure:"region"`
	LanguageCode    string `mapstructure:"language_code"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	AccessKeyID     string `mapstructure:"-"`
	SecretAccessKey string `mapstructure:"-"`
}

// StaticConfig 存储前端静态资源目录的配置。
type StaticConfig struct {
	Dir   string `mapstructure:"dir"`
	Index string `mapstructure:"index"`
}

// Load 从指定路径读取 YAML 配置并解析为 Config。
// 上游凭证沿用原部署的环境变量名 MY_ACCESS_KEY / MY_SECRET_KEY。
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("无法将配置解析到结构体中: %w", err)
	}

	cfg.Sentiment.AccessKeyID = os.Getenv("MY_ACCESS_KEY")
	cfg.Sentiment.SecretAccessKey = os.Getenv("MY_SECRET_KEY")

	if cfg.Sentiment.LanguageCode == "" {
		cfg.Sentiment.LanguageCode = "ja"
	}
	if cfg.Sentiment.TimeoutSeconds <= 0 {
		cfg.Sentiment.TimeoutSeconds = 10
	}
	if cfg.Static.Index == "" {
		cfg.Static.Index = "index.html"
	}

	return &cfg, nil
}
