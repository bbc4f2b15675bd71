package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"kokoro-chat-go/internal/apperr"
	"kokoro-chat-go/internal/model"
	"kokoro-chat-go/internal/repository"
)

// SessionService 定义了会话业务逻辑的接口。
type SessionService interface {
	// Create 创建一个命名会话，名称为空时返回校验错误。
	Create(ctx context.Context, name string) (string, error)
	// List 返回所有会话及其聊天数量，按创建时间倒序。
	List(ctx context.Context) ([]model.SessionListItem, error)
	// Delete 删除会话及其关联行，关联的聊天记录保留。
	Delete(ctx context.Context, sessionID string) error
}

type sessionService struct {
	repo repository.SessionRepository
}

// NewSessionService 创建一个新的 SessionService。
func NewSessionService(repo repository.SessionRepository) SessionService {
	return &sessionService{repo: repo}
}

// Create 校验会话名后生成 UUID 并写入存储。
func (s *sessionService) Create(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", apperr.New(apperr.Validation, "会话名称不能为空")
	}

	session := &model.Session{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return "", apperr.Wrap(apperr.Store, "创建会话失败", err)
	}
	return session.ID, nil
}

// List 返回会话列表。
func (s *sessionService) List(ctx context.Context) ([]model.SessionListItem, error) {
	items, err := s.repo.ListWithCount(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Store, "查询会话列表失败", err)
	}
	return items, nil
}

// Delete 删除一个会话。
func (s *sessionService) Delete(ctx context.Context, sessionID string) error {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return apperr.Wrap(apperr.Store, "删除会话失败", err)
	}
	return nil
}
