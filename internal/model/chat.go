// Package model 定义了与数据库表对应的 Go 结构体。
package model

import (
	"time"

	"gorm.io/datatypes"
)

// ChatRecord 对应于数据库中的 'chat_history' 表。
// 一条记录保存一次情感分析交互及其展示效果的元数据，创建后不可修改，只能删除。
type ChatRecord struct {
	// ID 是聊天记录的唯一标识符（服务端生成的 UUID），作为主键。
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`
	// Text 是用户输入的原始文本。
	Text string `gorm:"type:text;not null" json:"text"`
	// Sentiment 是情感分析得到的标签，如 POSITIVE / NEGATIVE。
	Sentiment string `gorm:"type:varchar(32);not null" json:"sentiment"`
	// Confidence 是置信度载荷，按原样序列化存储，读取时无损还原。
	// 存储层不关心其内部结构。
	Confidence datatypes.JSON `gorm:"not null" json:"confidence"`
	// EffectType 是前端展示效果的类型。
	EffectType string `gorm:"type:varchar(64);not null" json:"effect_type"`
	// EffectDescription 是展示效果的描述文本。
	EffectDescription string `gorm:"type:text;not null" json:"effect_description"`
	// CreatedAt 由 GORM 自动管理，记录创建时间。
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (ChatRecord) TableName() string {
	return "chat_history"
}

// ChatListItem 是聊天记录列表查询的行结构，在记录字段之外
// 附带所属会话的名称（未关联会话时为 NULL）。
type ChatListItem struct {
	ID                string         `json:"id"`
	Text              string         `json:"text"`
	Sentiment         string         `json:"sentiment"`
	Confidence        datatypes.JSON `json:"confidence"`
	EffectType        string         `json:"effect_type"`
	EffectDescription string         `json:"effect_description"`
	CreatedAt         time.Time      `json:"created_at"`
	SessionName       *string        `json:"session_name"`
}
