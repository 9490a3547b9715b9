package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Chat struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	FileObjectName *string        `gorm:"type:varchar(250)"`
	Favorite       bool           `gorm:"not null;default:false"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Chat) TableName() string {
	return "chats"
}

type ChatMessage struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Message    string         `gorm:"type:varchar(1000);not null"`
	SenderId   uuid.UUID      `gorm:"type:uuid;not null"` // user or bot id, discriminated by SenderType
	SenderType string         `gorm:"type:varchar(10);not null"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (ChatMessage) TableName() string {
	return "chats_history"
}

type Bot struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(50);not null"`
	Function  *string   `gorm:"type:varchar(100)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Bot) TableName() string {
	return "bots"
}
