package service

import (
	"context"
	"time"

	"medichat-be/internal/apperror"
	"medichat-be/internal/config"
	"medichat-be/internal/dto"
	"medichat-be/internal/entity"
	"medichat-be/internal/pkg/logger"
	"medichat-be/internal/repository/specification"
	"medichat-be/internal/repository/unitofwork"
	"medichat-be/pkg/botclient"
	"medichat-be/pkg/storage"

	"github.com/google/uuid"
)

type IChatService interface {
	SubmitMessage(ctx context.Context, userId uuid.UUID, req *dto.SubmitMessageRequest) (*dto.ChatResponse, error)
	ListChats(ctx context.Context, userId uuid.UUID, filters map[string]string) ([]*dto.ChatResponse, error)
	GetChat(ctx context.Context, userId, chatId uuid.UUID) (*dto.ChatResponse, error)
	UpdateChat(ctx context.Context, userId uuid.UUID, req *dto.UpdateChatRequest) (*dto.ChatResponse, error)
	DeleteChat(ctx context.Context, userId, chatId uuid.UUID) error

	ListHistory(ctx context.Context, userId uuid.UUID, filters map[string]string) ([]*dto.ChatMessageResponse, error)
	UpdateMessage(ctx context.Context, userId uuid.UUID, req *dto.UpdateMessageRequest) (*dto.ChatMessageResponse, error)
	DeleteMessage(ctx context.Context, userId, messageId uuid.UUID) error

	AttachTag(ctx context.Context, userId uuid.UUID, req *dto.TagRequest) (*dto.TagResponse, error)
	ListTags(ctx context.Context, userId, chatId uuid.UUID) ([]*dto.TagResponse, error)
	DetachTag(ctx context.Context, userId uuid.UUID, req *dto.TagRequest) error
}

type chatService struct {
	uowFactory    unitofwork.RepositoryFactory
	bot           botclient.Client
	store         storage.ObjectStore
	storageConfig config.StorageConfig
	log           logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	bot botclient.Client,
	store storage.ObjectStore,
	storageConfig config.StorageConfig,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:    uowFactory,
		bot:           bot,
		store:         store,
		storageConfig: storageConfig,
		log:           log,
	}
}

// SubmitMessage persists the user turn first and only then consults the
// assistant. The user's message is committed before the remote call, so a
// slow or failing assistant can never lose what the user said.
func (s *chatService) SubmitMessage(ctx context.Context, userId uuid.UUID, req *dto.SubmitMessageRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	chat, err := s.resolveChat(ctx, uow, userId, req)
	if err != nil {
		_ = uow.Rollback()
		return nil, err
	}

	userMessage := &entity.ChatMessage{
		Id:         uuid.New(),
		ChatId:     chat.Id,
		Message:    req.Message,
		SenderId:   userId,
		SenderType: entity.SenderTypeUser,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.askAndRecord(ctx, chat.Id, userId, req.Message)

	return s.GetChat(ctx, userId, chat.Id)
}

func (s *chatService) resolveChat(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, req *dto.SubmitMessageRequest) (*entity.Chat, error) {
	chats := uow.ChatRepository()

	if req.ChatId != nil {
		chat, err := chats.FindOne(ctx, specification.ByID{ID: *req.ChatId}, specification.OwnedBy{UserID: userId})
		if err != nil {
			return nil, err
		}
		if chat == nil {
			return nil, apperror.NotFound("chat not found")
		}
		return chat, nil
	}

	chat := &entity.Chat{
		Id:             uuid.New(),
		UserId:         userId,
		FileObjectName: req.FileObjectName,
		Favorite:       req.Favorite,
	}
	if err := chats.Create(ctx, chat); err != nil {
		return nil, err
	}
	return chat, nil
}

// askAndRecord runs the assistant exchange after the user turn is durable.
// Every failure along this path is logged and swallowed: the caller always
// gets the thread back, with or without a reply.
func (s *chatService) askAndRecord(ctx context.Context, chatId, userId uuid.UUID, question string) {
	answer, err := s.bot.Ask(ctx, question)
	if err != nil {
		s.log.Warn("chat", "assistant call failed", map[string]interface{}{
			"chat_id": chatId.String(),
			"error":   err.Error(),
		})
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	senderId := userId
	bot, err := uow.BotRepository().FindDefault(ctx)
	if err != nil {
		s.log.Warn("chat", "default assistant identity lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
	} else if bot != nil {
		senderId = bot.Id
	}

	botMessage := &entity.ChatMessage{
		Id:         uuid.New(),
		ChatId:     chatId,
		Message:    answer,
		SenderId:   senderId,
		SenderType: entity.SenderTypeBot,
	}
	if err := uow.ChatMessageRepository().Create(ctx, botMessage); err != nil {
		s.log.Warn("chat", "failed to persist assistant reply", map[string]interface{}{
			"chat_id": chatId.String(),
			"error":   err.Error(),
		})
	}
}

func (s *chatService) ListChats(ctx context.Context, userId uuid.UUID, filters map[string]string) ([]*dto.ChatResponse, error) {
	specs, err := specification.ParseFilters(specification.ChatFields, filters)
	if err != nil {
		return nil, err
	}
	page, err := specification.ParsePage(filters)
	if err != nil {
		return nil, err
	}
	specs = append(specs,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		page,
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	chats, err := uow.ChatRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ChatResponse, 0, len(chats))
	for _, chat := range chats {
		resp, err := s.buildChatResponse(ctx, uow, chat)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *chatService) GetChat(ctx context.Context, userId, chatId uuid.UUID) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	chat, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: chatId}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, apperror.NotFound("chat not found")
	}
	return s.buildChatResponse(ctx, uow, chat)
}

func (s *chatService) UpdateChat(ctx context.Context, userId uuid.UUID, req *dto.UpdateChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	chats := uow.ChatRepository()

	chat, err := chats.FindOne(ctx, specification.ByID{ID: req.Id}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, apperror.NotFound("chat not found")
	}

	fields := map[string]interface{}{}
	if req.Favorite != nil {
		fields["favorite"] = *req.Favorite
	}
	if req.FileObjectName != nil {
		fields["file_object_name"] = *req.FileObjectName
	}
	if len(fields) > 0 {
		if err := chats.UpdateFields(ctx, req.Id, fields); err != nil {
			return nil, err
		}
	}

	return s.GetChat(ctx, userId, req.Id)
}

// DeleteChat soft-deletes the thread and its history in one transaction.
func (s *chatService) DeleteChat(ctx context.Context, userId, chatId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chat, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: chatId}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if chat == nil {
		return apperror.NotFound("chat not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.ChatRepository().Delete(ctx, chatId); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.ChatMessageRepository().DeleteByChatId(ctx, chatId); err != nil {
		_ = uow.Rollback()
		return err
	}
	return uow.Commit()
}

func (s *chatService) ListHistory(ctx context.Context, userId uuid.UUID, filters map[string]string) ([]*dto.ChatMessageResponse, error) {
	specs, err := specification.ParseFilters(specification.ChatMessageFields, filters)
	if err != nil {
		return nil, err
	}
	page, err := specification.ParsePage(filters)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// History rows carry no owner column; scope through the caller's chats
	// BEFORE paginating, so page boundaries are computed over the caller's
	// rows only.
	chats, err := uow.ChatRepository().FindAll(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if len(chats) == 0 {
		return []*dto.ChatMessageResponse{}, nil
	}
	chatIds := make([]uuid.UUID, len(chats))
	for i, chat := range chats {
		chatIds[i] = chat.Id
	}

	specs = append(specs,
		specification.ChatIDIn{IDs: chatIds},
		specification.OrderBy{Field: "created_at", Desc: false},
		page,
	)
	messages, err := uow.ChatMessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, toMessageResponse(message))
	}
	return responses, nil
}

func (s *chatService) UpdateMessage(ctx context.Context, userId uuid.UUID, req *dto.UpdateMessageRequest) (*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	message, err := s.findOwnedMessage(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if err := uow.ChatMessageRepository().UpdateFields(ctx, req.Id, map[string]interface{}{
		"message": req.Message,
	}); err != nil {
		return nil, err
	}

	message, err = uow.ChatMessageRepository().FindOne(ctx, specification.ByID{ID: message.Id})
	if err != nil {
		return nil, err
	}
	return toMessageResponse(message), nil
}

func (s *chatService) DeleteMessage(ctx context.Context, userId, messageId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedMessage(ctx, uow, userId, messageId); err != nil {
		return err
	}
	return uow.ChatMessageRepository().Delete(ctx, messageId)
}

func (s *chatService) AttachTag(ctx context.Context, userId uuid.UUID, req *dto.TagRequest) (*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireOwnedChat(ctx, uow, userId, req.ChatId); err != nil {
		return nil, err
	}

	tag, err := uow.TagRepository().FindOrCreateByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if err := uow.TagRepository().Attach(ctx, req.ChatId, tag.Id); err != nil {
		return nil, err
	}
	return &dto.TagResponse{Id: tag.Id, Name: tag.Name}, nil
}

func (s *chatService) ListTags(ctx context.Context, userId, chatId uuid.UUID) ([]*dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireOwnedChat(ctx, uow, userId, chatId); err != nil {
		return nil, err
	}

	tags, err := uow.TagRepository().FindByChat(ctx, chatId)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, &dto.TagResponse{Id: tag.Id, Name: tag.Name})
	}
	return responses, nil
}

func (s *chatService) DetachTag(ctx context.Context, userId uuid.UUID, req *dto.TagRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireOwnedChat(ctx, uow, userId, req.ChatId); err != nil {
		return err
	}

	tag, err := uow.TagRepository().FindOrCreateByName(ctx, req.Name)
	if err != nil {
		return err
	}
	return uow.TagRepository().Detach(ctx, req.ChatId, tag.Id)
}

func (s *chatService) requireOwnedChat(ctx context.Context, uow unitofwork.UnitOfWork, userId, chatId uuid.UUID) error {
	chat, err := uow.ChatRepository().FindOne(ctx, specification.ByID{ID: chatId}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if chat == nil {
		return apperror.NotFound("chat not found")
	}
	return nil
}

func (s *chatService) findOwnedMessage(ctx context.Context, uow unitofwork.UnitOfWork, userId, messageId uuid.UUID) (*entity.ChatMessage, error) {
	message, err := uow.ChatMessageRepository().FindOne(ctx, specification.ByID{ID: messageId})
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, apperror.NotFound("message not found")
	}
	if err := s.requireOwnedChat(ctx, uow, userId, message.ChatId); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *chatService) buildChatResponse(ctx context.Context, uow unitofwork.UnitOfWork, chat *entity.Chat) (*dto.ChatResponse, error) {
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatID{ChatID: chat.Id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	history := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, message := range messages {
		history = append(history, *toMessageResponse(message))
	}

	tags, err := uow.TagRepository().FindByChat(ctx, chat.Id)
	if err != nil {
		return nil, err
	}
	tagResponses := make([]dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		tagResponses = append(tagResponses, dto.TagResponse{Id: tag.Id, Name: tag.Name})
	}

	resp := &dto.ChatResponse{
		Id:             chat.Id,
		UserId:         chat.UserId,
		FileObjectName: chat.FileObjectName,
		Favorite:       chat.Favorite,
		CreatedAt:      chat.CreatedAt,
		UpdatedAt:      chat.UpdatedAt,
		History:        history,
		Tags:           tagResponses,
	}
	if chat.FileObjectName != nil {
		ttl := time.Duration(s.storageConfig.PresignTTLSec) * time.Second
		if url, err := s.store.PresignGet(ctx, *chat.FileObjectName, ttl); err == nil {
			resp.FileURL = &url
		} else {
			s.log.Warn("chat", "failed to presign chat attachment", map[string]interface{}{
				"object_key": *chat.FileObjectName,
				"error":      err.Error(),
			})
		}
	}
	return resp, nil
}

func toMessageResponse(message *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:         message.Id,
		ChatId:     message.ChatId,
		Message:    message.Message,
		SenderId:   message.SenderId,
		SenderType: string(message.SenderType),
		CreatedAt:  message.CreatedAt,
	}
}
