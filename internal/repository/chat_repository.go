// Package repository 包含了所有与数据库交互的逻辑。
package repository

import (
	"context"

	"gorm.io/gorm"

	"kokoro-chat-go/internal/model"
)

// ChatRepository 接口定义了聊天记录的数据操作方法。
type ChatRepository interface {
	// Create 插入一条聊天记录；sessionID 非空时同时插入会话关联行。
	// 两次写入在同一个事务中完成，不会出现只写入一半的记录。
	Create(ctx context.Context, chat *model.ChatRecord, sessionID string) error
	// List 按创建时间倒序返回聊天记录。sessionID 非空时仅返回该会话
	// 关联的记录（内连接），否则返回全部记录并尽力带出会话名（外连接）。
	List(ctx context.Context, sessionID string, limit int) ([]model.ChatListItem, error)
	// Delete 删除一条聊天记录及其会话关联行，记录不存在时为幂等空操作。
	Delete(ctx context.Context, chatID string) error
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository 创建一个新的 ChatRepository 实例。
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// Create 在一个事务中写入聊天记录和可选的会话关联。
func (r *chatRepository) Create(ctx context.Context, chat *model.ChatRecord, sessionID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return err
		}
		if sessionID != "" {
			link := model.SessionChat{SessionID: sessionID, ChatID: chat.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// List 查询聊天记录列表，始终按创建时间倒序并受 limit 约束。
func (r *chatRepository) List(ctx context.Context, sessionID string, limit int) ([]model.ChatListItem, error) {
	query := r.db.WithContext(ctx).
		Table("chat_history AS ch").
		Select("ch.id, ch.text, ch.sentiment, ch.confidence, ch.effect_type, ch.effect_description, ch.created_at, s.name AS session_name")

	if sessionID != "" {
		query = query.
			Joins("JOIN session_chats sc ON sc.chat_id = ch.id").
			Joins("JOIN sessions s ON s.id = sc.session_id").
			Where("sc.session_id = ?", sessionID)
	} else {
		query = query.
			Joins("LEFT JOIN session_chats sc ON sc.chat_id = ch.id").
			Joins("LEFT JOIN sessions s ON s.id = sc.session_id")
	}

	var items []model.ChatListItem
	err := query.Order("ch.created_at DESC").Limit(limit).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete 在一个事务中先清理会话关联行，再删除聊天记录本身。
func (r *chatRepository) Delete(ctx context.Context, chatID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", chatID).Delete(&model.SessionChat{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ChatRecord{}, "id = ?", chatID).Error
	})
}
