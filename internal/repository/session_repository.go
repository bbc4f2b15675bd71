package repository

import (
	"context"

	"gorm.io/gorm"

	"kokoro-chat-go/internal/model"
)

// SessionRepository 接口定义了会话的数据操作方法。
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	// ListWithCount 返回所有会话及各自关联的聊天数量，按创建时间倒序。
	ListWithCount(ctx context.Context) ([]model.SessionListItem, error)
	// Delete 删除会话及其关联行，会话不存在时为幂等空操作。
	// 关联的聊天记录本身保留。
	Delete(ctx context.Context, sessionID string) error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository 创建一个新的 SessionRepository 实例。
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create 在数据库中插入一条新的会话记录。
func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// ListWithCount 外连接关联表并按会话分组统计聊天数量。
func (r *sessionRepository) ListWithCount(ctx context.Context) ([]model.SessionListItem, error) {
	var items []model.SessionListItem
	err := r.db.WithContext(ctx).
		Table("sessions AS s").
		Select("s.id, s.name, s.created_at, COUNT(sc.chat_id) AS chat_count").
		Joins("LEFT JOIN session_chats sc ON sc.session_id = s.id").
		Group("s.id, s.name, s.created_at").
		Order("s.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete 在一个事务中先清理关联行，再删除会话本身。
func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&model.SessionChat{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Session{}, "id = ?", sessionID).Error
	})
}
