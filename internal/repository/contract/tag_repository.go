package contract

import (
	"context"

	"medichat-be/internal/entity"

	"github.com/google/uuid"
)

type TagRepository interface {
	FindOrCreateByName(ctx context.Context, name string) (*entity.Tag, error)
	Attach(ctx context.Context, chatId, tagId uuid.UUID) error
	Detach(ctx context.Context, chatId, tagId uuid.UUID) error
	FindByChat(ctx context.Context, chatId uuid.UUID) ([]*entity.Tag, error)
}
