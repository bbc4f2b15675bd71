package model

import "time"

// Session 对应于数据库中的 'sessions' 表，将多条聊天记录分组。
type Session struct {
	// ID 是会话的唯一标识符（服务端生成的 UUID），作为主键。
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`
	// Name 是会话的显示名称。
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	// CreatedAt 由 GORM 自动管理，记录创建时间。
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Session) TableName() string {
	return "sessions"
}

// SessionChat 对应于数据库中的 'session_chats' 关联表，
// 以 (session_id, chat_id) 复合主键保证同一对关联唯一。
// 不设外键级联，孤儿行由删除操作显式清理。
type SessionChat struct {
	SessionID string `gorm:"type:varchar(36);primaryKey" json:"session_id"`
	ChatID    string `gorm:"type:varchar(36);primaryKey" json:"chat_id"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (SessionChat) TableName() string {
	return "session_chats"
}

// SessionListItem 是会话列表查询的行结构，附带关联的聊天数量。
type SessionListItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	ChatCount int64     `json:"chat_count"`
}
