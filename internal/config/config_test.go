package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"kokoro-chat-go/internal/config"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: "5000"
  mode: "debug"
database:
  mysql:
    dsn: "user:pass@tcp(localhost:3306)/db"
log:
  level: "info"
  format: "console"
sentiment:
  region: "ap-northeast-1"
  language_code: "ja"
  timeout_seconds: 3
static:
  dir: "./dist"
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}

	t.Setenv("MY_ACCESS_KEY", "ak")
	t.Setenv("MY_SECRET_KEY", "sk")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Port != "5000" || cfg.Database.MySQL.DSN == "" {
		t.Fatalf("基础配置解析错误: %+v", cfg)
	}
	if cfg.Sentiment.Region != "ap-northeast-1" || cfg.Sentiment.TimeoutSeconds != 3 {
		t.Fatalf("sentiment 配置解析错误: %+v", cfg.Sentiment)
	}
	if cfg.Sentiment.AccessKeyID != "ak" || cfg.Sentiment.SecretAccessKey != "sk" {
		t.Fatalf("凭证应从环境变量读取: %+v", cfg.Sentiment)
	}
	// 未配置 index 时使用默认值
	if cfg.Static.Index != "index.html" {
		t.Fatalf("index 默认值错误: %q", cfg.Static.Index)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("配置文件不存在时应返回错误")
	}
}
