package implementation

import (
	"context"
	"errors"

	"medichat-be/internal/entity"
	"medichat-be/internal/mapper"
	"medichat-be/internal/model"
	"medichat-be/internal/repository/contract"
	"medichat-be/internal/repository/crud"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRepositoryImpl struct {
	*crud.Repository[model.Chat, entity.Chat]
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) contract.ChatRepository {
	m := mapper.NewChatMapper()
	return &ChatRepositoryImpl{
		Repository: crud.New(db, m.ChatToModel, m.ChatToEntity),
		db:         db,
	}
}

func (r *ChatRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DeleteById(ctx, id)
}

type ChatMessageRepositoryImpl struct {
	*crud.Repository[model.ChatMessage, entity.ChatMessage]
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	m := mapper.NewChatMapper()
	return &ChatMessageRepositoryImpl{
		Repository: crud.New(db, m.MessageToModel, m.MessageToEntity),
		db:         db,
	}
}

func (r *ChatMessageRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DeleteById(ctx, id)
}

func (r *ChatMessageRepositoryImpl) DeleteByChatId(ctx context.Context, chatId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("chat_id = ?", chatId).Delete(&model.ChatMessage{}).Error
}

type BotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewBotRepository(db *gorm.DB) contract.BotRepository {
	return &BotRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *BotRepositoryImpl) Create(ctx context.Context, bot *entity.Bot) error {
	m := r.mapper.BotToModel(bot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*bot = *r.mapper.BotToEntity(m)
	return nil
}

// FindDefault returns the seeded bot identity, nil when none exists.
func (r *BotRepositoryImpl) FindDefault(ctx context.Context) (*entity.Bot, error) {
	var m model.Bot
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.BotToEntity(&m), nil
}
