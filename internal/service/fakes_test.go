package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"medichat-be/internal/entity"
	"medichat-be/internal/repository/contract"
	"medichat-be/internal/repository/specification"
	"medichat-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory doubles for the persistence and remote boundaries. They
// interpret the typed specifications directly, so service tests run
// without a database.

type fakeLogger struct {
	warns []string
}

func (l *fakeLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *fakeLogger) Info(module, message string, details map[string]interface{})  {}
func (l *fakeLogger) Warn(module, message string, details map[string]interface{}) {
	l.warns = append(l.warns, module+": "+message)
}
func (l *fakeLogger) Error(module, message string, details map[string]interface{}) {}
func (l *fakeLogger) Sync() error                                                 { return nil }

type fakeStore struct {
	uploads    []string
	deletes    []string
	uploadErr  error
	presignErr error
}

func (s *fakeStore) Upload(ctx context.Context, key, contentType string, body io.Reader, public bool) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.uploads = append(s.uploads, key)
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	s.deletes = append(s.deletes, key)
	return nil
}

func (s *fakeStore) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if s.presignErr != nil {
		return "", s.presignErr
	}
	return "https://signed.example.com/" + key, nil
}

type fakeBot struct {
	answer string
	err    error
	calls  int
}

func (b *fakeBot) Ask(ctx context.Context, question string) (string, error) {
	b.calls++
	if b.err != nil {
		return "", b.err
	}
	return b.answer, nil
}

// --- user repository ---

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := *user
	r.users[user.Id] = &clone
	return nil
}

func (r *fakeUserRepo) Save(ctx context.Context, user *entity.User) error {
	clone := *user
	r.users[user.Id] = &clone
	return nil
}

func (r *fakeUserRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	user, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	for key, value := range fields {
		switch key {
		case "name":
			user.Name = value.(string)
		case "email":
			user.Email = value.(string)
		case "birthdate":
			user.Birthdate = value.(time.Time)
		case "password_hash":
			user.PasswordHash = value.(string)
		case "medical_document":
			v := value.(string)
			user.MedicalDocument = &v
		case "medical_document_type":
			v := value.(string)
			user.MedicalDocumentType = &v
		}
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if matchUser(user, specs) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, user := range r.users {
		if matchUser(user, specs) {
			clone := *user
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeUserRepo) MarkDeleted(ctx context.Context, id uuid.UUID) error {
	user, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	user.Deleted = true
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"password_hash": hash})
}

func (r *fakeUserRepo) UpdatePhotoObject(ctx context.Context, id uuid.UUID, objectKey *string) error {
	user, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	user.PhotoObject = objectKey
	return nil
}

func matchUser(user *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if user.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if user.Email != s.Email {
				return false
			}
		case specification.ByDocument:
			if user.Document != s.Document {
				return false
			}
		case specification.ByEmailOrName:
			if user.Email != s.Identifier && user.Name != s.Identifier {
				return false
			}
		case specification.NotDeletedFlag:
			if user.Deleted {
				return false
			}
		}
	}
	return true
}

// --- chat repositories ---

type fakeChatRepo struct {
	chats map[uuid.UUID]*entity.Chat
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{chats: map[uuid.UUID]*entity.Chat{}}
}

func (r *fakeChatRepo) Create(ctx context.Context, chat *entity.Chat) error {
	chat.CreatedAt = time.Now()
	clone := *chat
	r.chats[chat.Id] = &clone
	return nil
}

func (r *fakeChatRepo) Save(ctx context.Context, chat *entity.Chat) error {
	clone := *chat
	r.chats[chat.Id] = &clone
	return nil
}

func (r *fakeChatRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	chat, ok := r.chats[id]
	if !ok {
		return fmt.Errorf("chat %s not found", id)
	}
	for key, value := range fields {
		switch key {
		case "favorite":
			chat.Favorite = value.(bool)
		case "file_object_name":
			v := value.(string)
			chat.FileObjectName = &v
		}
	}
	return nil
}

func (r *fakeChatRepo) Delete(ctx context.Context, id uuid.UUID) error {
	chat, ok := r.chats[id]
	if !ok {
		return fmt.Errorf("chat %s not found", id)
	}
	now := time.Now()
	chat.DeletedAt = &now
	chat.IsDeleted = true
	return nil
}

func (r *fakeChatRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error) {
	for _, chat := range r.chats {
		if chat.IsDeleted {
			continue
		}
		if matchChat(chat, specs) {
			clone := *chat
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error) {
	var out []*entity.Chat
	for _, chat := range r.chats {
		if chat.IsDeleted {
			continue
		}
		if matchChat(chat, specs) {
			clone := *chat
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchChat(chat *entity.Chat, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if chat.Id != s.ID {
				return false
			}
		case specification.OwnedBy:
			if chat.UserId != s.UserID {
				return false
			}
		case specification.Equals:
			if s.Field == "favorite" && chat.Favorite != s.Value.(bool) {
				return false
			}
		}
	}
	return true
}

type fakeChatMessageRepo struct {
	messages map[uuid.UUID]*entity.ChatMessage
	seq      int
	err      error
}

func newFakeChatMessageRepo() *fakeChatMessageRepo {
	return &fakeChatMessageRepo{messages: map[uuid.UUID]*entity.ChatMessage{}}
}

func (r *fakeChatMessageRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	if r.err != nil {
		return r.err
	}
	r.seq++
	message.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	clone := *message
	r.messages[message.Id] = &clone
	return nil
}

func (r *fakeChatMessageRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	message, ok := r.messages[id]
	if !ok {
		return fmt.Errorf("message %s not found", id)
	}
	if v, ok := fields["message"]; ok {
		message.Message = v.(string)
	}
	return nil
}

func (r *fakeChatMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	message, ok := r.messages[id]
	if !ok {
		return fmt.Errorf("message %s not found", id)
	}
	now := time.Now()
	message.DeletedAt = &now
	message.IsDeleted = true
	return nil
}

func (r *fakeChatMessageRepo) DeleteByChatId(ctx context.Context, chatId uuid.UUID) error {
	for _, message := range r.messages {
		if message.ChatId == chatId {
			now := time.Now()
			message.DeletedAt = &now
			message.IsDeleted = true
		}
	}
	return nil
}

func (r *fakeChatMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	for _, message := range r.messages {
		if message.IsDeleted {
			continue
		}
		if matchMessage(message, specs) {
			clone := *message
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeChatMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	for _, message := range r.messages {
		if message.IsDeleted {
			continue
		}
		if matchMessage(message, specs) {
			clone := *message
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	// Pagination windows over the filtered rows, like LIMIT/OFFSET would.
	for _, spec := range specs {
		if page, ok := spec.(specification.Page); ok {
			start := page.Page * page.PageSize
			if start >= len(out) {
				return nil, nil
			}
			end := start + page.PageSize
			if end > len(out) {
				end = len(out)
			}
			out = out[start:end]
		}
	}
	return out, nil
}

func (r *fakeChatMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchMessage(message *entity.ChatMessage, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if message.Id != s.ID {
				return false
			}
		case specification.ByChatID:
			if message.ChatId != s.ChatID {
				return false
			}
		case specification.ChatIDIn:
			found := false
			for _, id := range s.IDs {
				if message.ChatId == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case specification.Equals:
			switch s.Field {
			case "chat_id":
				if message.ChatId != s.Value.(uuid.UUID) {
					return false
				}
			case "sender_id":
				if message.SenderId != s.Value.(uuid.UUID) {
					return false
				}
			}
		case specification.Like:
			if s.Field == "sender_type" && string(message.SenderType) != s.Value {
				return false
			}
		}
	}
	return true
}

type fakeBotRepo struct {
	bot *entity.Bot
	err error
}

func (r *fakeBotRepo) Create(ctx context.Context, bot *entity.Bot) error {
	r.bot = bot
	return nil
}

func (r *fakeBotRepo) FindDefault(ctx context.Context) (*entity.Bot, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.bot, nil
}

type fakeTagRepo struct {
	tags     map[string]*entity.Tag
	attached map[uuid.UUID][]uuid.UUID // chat -> tag ids
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{
		tags:     map[string]*entity.Tag{},
		attached: map[uuid.UUID][]uuid.UUID{},
	}
}

func (r *fakeTagRepo) FindOrCreateByName(ctx context.Context, name string) (*entity.Tag, error) {
	if tag, ok := r.tags[name]; ok {
		return tag, nil
	}
	tag := &entity.Tag{Id: uuid.New(), Name: name}
	r.tags[name] = tag
	return tag, nil
}

func (r *fakeTagRepo) Attach(ctx context.Context, chatId, tagId uuid.UUID) error {
	for _, existing := range r.attached[chatId] {
		if existing == tagId {
			return nil
		}
	}
	r.attached[chatId] = append(r.attached[chatId], tagId)
	return nil
}

func (r *fakeTagRepo) Detach(ctx context.Context, chatId, tagId uuid.UUID) error {
	kept := r.attached[chatId][:0]
	for _, existing := range r.attached[chatId] {
		if existing != tagId {
			kept = append(kept, existing)
		}
	}
	r.attached[chatId] = kept
	return nil
}

func (r *fakeTagRepo) FindByChat(ctx context.Context, chatId uuid.UUID) ([]*entity.Tag, error) {
	var out []*entity.Tag
	for _, tagId := range r.attached[chatId] {
		for _, tag := range r.tags {
			if tag.Id == tagId {
				out = append(out, tag)
			}
		}
	}
	return out, nil
}

type fakeRequestLogRepo struct {
	logs []*entity.RequestLog
}

func (r *fakeRequestLogRepo) Create(ctx context.Context, record *entity.RequestLog) error {
	r.logs = append(r.logs, record)
	return nil
}

// --- unit of work ---

type fakeUow struct {
	userRepo    *fakeUserRepo
	chatRepo    *fakeChatRepo
	messageRepo *fakeChatMessageRepo
	botRepo     *fakeBotRepo
	tagRepo     *fakeTagRepo
	logRepo     *fakeRequestLogRepo

	begun     int
	committed int
	rolled    int
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		userRepo:    newFakeUserRepo(),
		chatRepo:    newFakeChatRepo(),
		messageRepo: newFakeChatMessageRepo(),
		botRepo:     &fakeBotRepo{},
		tagRepo:     newFakeTagRepo(),
		logRepo:     &fakeRequestLogRepo{},
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { u.begun++; return nil }
func (u *fakeUow) Commit() error                   { u.committed++; return nil }
func (u *fakeUow) Rollback() error                 { u.rolled++; return nil }

func (u *fakeUow) UserRepository() contract.UserRepository               { return u.userRepo }
func (u *fakeUow) ChatRepository() contract.ChatRepository               { return u.chatRepo }
func (u *fakeUow) ChatMessageRepository() contract.ChatMessageRepository { return u.messageRepo }
func (u *fakeUow) BotRepository() contract.BotRepository                 { return u.botRepo }
func (u *fakeUow) TagRepository() contract.TagRepository                 { return u.tagRepo }
func (u *fakeUow) RequestLogRepository() contract.RequestLogRepository   { return u.logRepo }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}
