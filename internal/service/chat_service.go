// Package service 包含了应用的业务逻辑层。
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kokoro-chat-go/internal/apperr"
	"kokoro-chat-go/internal/model"
	"kokoro-chat-go/internal/repository"
)

// defaultChatLimit 是聊天记录列表查询的默认条数上限。
const defaultChatLimit = 50

// SaveChatInput 是保存聊天记录所需的全部输入。
type SaveChatInput struct {
	Text              string
	Sentiment         string
	Confidence        json.RawMessage
	EffectType        string
	EffectDescription string
	SessionID         string
}

// ChatService 定义了聊天记录业务逻辑的接口。
type ChatService interface {
	// Save 校验输入并持久化一条聊天记录，返回新记录的 ID。
	// 五个必填字段缺任何一个都会返回校验错误，且不写入任何行。
	Save(ctx context.Context, input SaveChatInput) (string, error)
	// List 返回聊天记录列表，limit 不合法时回退为默认值。
	List(ctx context.Context, sessionID string, limit int) ([]model.ChatListItem, error)
	// Delete 删除一条聊天记录，记录不存在时同样视为成功。
	Delete(ctx context.Context, chatID string) error
}

type chatService struct {
	repo repository.ChatRepository
}

// NewChatService 创建一个新的 ChatService。
func NewChatService(repo repository.ChatRepository) ChatService {
	return &chatService{repo: repo}
}

// Save 校验必填字段后生成 UUID 并写入存储。
func (s *chatService) Save(ctx context.Context, input SaveChatInput) (string, error) {
	if strings.TrimSpace(input.Text) == "" ||
		strings.TrimSpace(input.Sentiment) == "" ||
		!hasConfidence(input.Confidence) ||
		strings.TrimSpace(input.EffectType) == "" ||
		strings.TrimSpace(input.EffectDescription) == "" {
		return "", apperr.New(apperr.Validation, "缺少必填字段")
	}

	chat := &model.ChatRecord{
		ID:                uuid.NewString(),
		Text:              input.Text,
		Sentiment:         input.Sentiment,
		Confidence:        datatypes.JSON(input.Confidence),
		EffectType:        input.EffectType,
		EffectDescription: input.EffectDescription,
	}
	if err := s.repo.Create(ctx, chat, input.SessionID); err != nil {
		return "", apperr.Wrap(apperr.Store, "保存聊天记录失败", err)
	}
	return chat.ID, nil
}

// List 返回聊天记录列表，按创建时间倒序。
func (s *chatService) List(ctx context.Context, sessionID string, limit int) ([]model.ChatListItem, error) {
	if limit <= 0 {
		limit = defaultChatLimit
	}
	items, err := s.repo.List(ctx, sessionID, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "查询聊天记录失败", err)
	}
	return items, nil
}

// Delete 删除一条聊天记录及其会话关联。
func (s *chatService) Delete(ctx context.Context, chatID string) error {
	if err := s.repo.Delete(ctx, chatID); err != nil {
		return apperr.Wrap(apperr.Store, "删除聊天记录失败", err)
	}
	return nil
}

// hasConfidence 判断置信度载荷是否实际存在。
// 缺失字段解析后为 nil，显式的 JSON null 同样视为缺失。
func hasConfidence(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
