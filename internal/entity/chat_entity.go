package entity

import (
	"time"

	"github.com/google/uuid"
)

type SenderType string

const (
	SenderTypeUser SenderType = "user"
	SenderTypeBot  SenderType = "bot"
)

type Chat struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	FileObjectName *string
	Favorite       bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

type ChatMessage struct {
	Id         uuid.UUID
	ChatId     uuid.UUID
	Message    string
	SenderId   uuid.UUID
	SenderType SenderType
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}

type Bot struct {
	Id       uuid.UUID
	Name     string
	Function *string
}
