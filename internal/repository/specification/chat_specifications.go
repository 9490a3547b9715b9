package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByChatID struct {
	ChatID uuid.UUID
}

func (s ByChatID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_id = ?", s.ChatID)
}

// ChatIDIn scopes history rows to a set of chats. Callers build the set
// from the chats they own so pagination windows never span other users'
// rows.
type ChatIDIn struct {
	IDs []uuid.UUID
}

func (s ChatIDIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_id IN ?", s.IDs)
}

// ChatFields is the filter schema for GET /chats.
var ChatFields = FieldSchema{
	"id":         UUID,
	"user_id":    UUID,
	"favorite":   Bool,
	"created_at": Time,
	"updated_at": Time,
}

// ChatMessageFields is the filter schema for GET /chats/history.
var ChatMessageFields = FieldSchema{
	"id":          UUID,
	"chat_id":     UUID,
	"sender_id":   UUID,
	"sender_type": String,
	"message":     String,
	"created_at":  Time,
}
