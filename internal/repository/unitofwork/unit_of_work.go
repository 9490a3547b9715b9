package unitofwork

import (
	"context"

	"medichat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatRepository() contract.ChatRepository
	ChatMessageRepository() contract.ChatMessageRepository
	BotRepository() contract.BotRepository
	TagRepository() contract.TagRepository
	RequestLogRepository() contract.RequestLogRepository
}
