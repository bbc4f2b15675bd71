package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kokoro-chat-go/internal/model"
	"kokoro-chat-go/internal/repository"
)

// newTestDB 创建一个内存 SQLite 数据库并完成建表。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	// 内存数据库按连接隔离，限制为单连接避免查询落到空库
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层 sql.DB 失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.ChatRecord{}, &model.Session{}, &model.SessionChat{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

func mustCreateChat(t *testing.T, repo repository.ChatRepository, chat *model.ChatRecord, sessionID string) {
	t.Helper()
	if err := repo.Create(context.Background(), chat, sessionID); err != nil {
		t.Fatalf("创建聊天记录失败: %v", err)
	}
}

func TestChatCreateAndListRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewChatRepository(db)
	ctx := context.Background()

	chat := &model.ChatRecord{
		ID:                "chat-1",
		Text:              "今日はいい天気",
		Sentiment:         "POSITIVE",
		Confidence:        datatypes.JSON(`{"positive":0.92,"negative":0.01}`),
		EffectType:        "sakura",
		EffectDescription: "桜吹雪",
	}
	mustCreateChat(t, repo, chat, "")

	items, err := repo.List(ctx, "", 50)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("期望 1 条记录, 实际 %d", len(items))
	}

	got := items[0]
	if got.ID != chat.ID || got.Text != chat.Text || got.Sentiment != chat.Sentiment ||
		got.EffectType != chat.EffectType || got.EffectDescription != chat.EffectDescription {
		t.Fatalf("字段不匹配: %+v", got)
	}
	if got.SessionName != nil {
		t.Fatalf("未关联会话时 session_name 应为 nil, 实际 %v", *got.SessionName)
	}

	// 置信度载荷应无损还原
	var conf map[string]float64
	if err := json.Unmarshal(got.Confidence, &conf); err != nil {
		t.Fatalf("confidence 反序列化失败: %v", err)
	}
	if conf["positive"] != 0.92 {
		t.Fatalf("confidence 内容不匹配: %v", conf)
	}
}

func TestChatListSessionFilterOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	chatRepo := repository.NewChatRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	ctx := context.Background()

	session := &model.Session{ID: "sess-1", Name: "demo"}
	if err := sessionRepo.Create(ctx, session); err != nil {
		t.Fatalf("创建会话失败: %v", err)
	}

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"chat-a", "chat-b", "chat-c"} {
		chat := &model.ChatRecord{
			ID:                id,
			Text:              "text " + id,
			Sentiment:         "NEUTRAL",
			Confidence:        datatypes.JSON(`{"neutral":0.8}`),
			EffectType:        "normal",
			EffectDescription: "effect",
			CreatedAt:         base.Add(time.Duration(i) * time.Minute),
		}
		mustCreateChat(t, chatRepo, chat, session.ID)
	}
	// 不属于会话的记录，过滤查询时不应出现
	mustCreateChat(t, chatRepo, &model.ChatRecord{
		ID: "chat-x", Text: "t", Sentiment: "MIXED",
		Confidence: datatypes.JSON(`{}`), EffectType: "e", EffectDescription: "d",
		CreatedAt: base.Add(time.Hour),
	}, "")

	items, err := chatRepo.List(ctx, session.ID, 50)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("期望 3 条记录, 实际 %d", len(items))
	}
	// 按创建时间倒序
	if items[0].ID != "chat-c" || items[1].ID != "chat-b" || items[2].ID != "chat-a" {
		t.Fatalf("排序错误: %s %s %s", items[0].ID, items[1].ID, items[2].ID)
	}
	for _, item := range items {
		if item.SessionName == nil || *item.SessionName != "demo" {
			t.Fatalf("session_name 不匹配: %+v", item)
		}
	}

	// limit 生效
	limited, err := chatRepo.List(ctx, session.ID, 2)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("期望 2 条记录, 实际 %d", len(limited))
	}
}

func TestChatCreateRollsBackWhenLinkInsertFails(t *testing.T) {
	db := newTestDB(t)
	chatRepo := repository.NewChatRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	ctx := context.Background()

	if err := sessionRepo.Create(ctx, &model.Session{ID: "sess-1", Name: "demo"}); err != nil {
		t.Fatalf("创建会话失败: %v", err)
	}
	// 预先占用 (sess-1, chat-1) 复合主键，使关联插入必然失败
	if err := db.Create(&model.SessionChat{SessionID: "sess-1", ChatID: "chat-1"}).Error; err != nil {
		t.Fatalf("预置关联行失败: %v", err)
	}

	err := chatRepo.Create(ctx, &model.ChatRecord{
		ID: "chat-1", Text: "t", Sentiment: "POSITIVE",
		Confidence: datatypes.JSON(`{"positive":1}`), EffectType: "e", EffectDescription: "d",
	}, "sess-1")
	if err == nil {
		t.Fatal("关联插入失败时 Create 应返回错误")
	}

	// 事务整体回滚，聊天记录不应落库
	var count int64
	if err := db.Model(&model.ChatRecord{}).Where("id = ?", "chat-1").Count(&count).Error; err != nil {
		t.Fatalf("Count err: %v", err)
	}
	if count != 0 {
		t.Fatalf("事务未回滚, chat_history 中残留 %d 行", count)
	}
}

func TestChatDeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewChatRepository(db)
	ctx := context.Background()

	// 删除从未创建过的记录不应报错
	if err := repo.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("删除不存在的记录应为空操作, err: %v", err)
	}

	chat := &model.ChatRecord{
		ID: "chat-1", Text: "t", Sentiment: "POSITIVE",
		Confidence: datatypes.JSON(`{"positive":1}`), EffectType: "e", EffectDescription: "d",
	}
	mustCreateChat(t, repo, chat, "")

	if err := repo.Delete(ctx, chat.ID); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	items, err := repo.List(ctx, "", 50)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("删除后仍有 %d 条记录", len(items))
	}
}

func TestChatDeleteRemovesMembership(t *testing.T) {
	db := newTestDB(t)
	chatRepo := repository.NewChatRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	ctx := context.Background()

	if err := sessionRepo.Create(ctx, &model.Session{ID: "sess-1", Name: "demo"}); err != nil {
		t.Fatalf("创建会话失败: %v", err)
	}
	mustCreateChat(t, chatRepo, &model.ChatRecord{
		ID: "chat-1", Text: "t", Sentiment: "POSITIVE",
		Confidence: datatypes.JSON(`{}`), EffectType: "e", EffectDescription: "d",
	}, "sess-1")

	if err := chatRepo.Delete(ctx, "chat-1"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}

	var count int64
	if err := db.Model(&model.SessionChat{}).Where("chat_id = ?", "chat-1").Count(&count).Error; err != nil {
		t.Fatalf("Count err: %v", err)
	}
	if count != 0 {
		t.Fatalf("关联行未被清理, 剩余 %d", count)
	}
}
