package dto

import (
	"time"

	"github.com/google/uuid"
)

// SubmitMessageRequest drives the chat-ingestion workflow. A nil ChatId
// creates a new thread owned by the caller.
type SubmitMessageRequest struct {
	ChatId         *uuid.UUID `json:"chat_id,omitempty"`
	Message        string     `json:"message"`
	FileObjectName *string    `json:"file_object_name,omitempty"`
	Favorite       bool       `json:"favorite"`
}

type ChatMessageResponse struct {
	Id         uuid.UUID `json:"id"`
	ChatId     uuid.UUID `json:"chat_id"`
	Message    string    `json:"message"`
	SenderId   uuid.UUID `json:"sender_id"`
	SenderType string    `json:"sender_type"`
	CreatedAt  time.Time `json:"created_at"`
}

type ChatResponse struct {
	Id             uuid.UUID             `json:"id"`
	UserId         uuid.UUID             `json:"user_id"`
	FileObjectName *string               `json:"file_object_name,omitempty"`
	FileURL        *string               `json:"file_url,omitempty"`
	Favorite       bool                  `json:"favorite"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      *time.Time            `json:"updated_at,omitempty"`
	History        []ChatMessageResponse `json:"chat_history"`
	Tags           []TagResponse         `json:"tags,omitempty"`
}

type UpdateChatRequest struct {
	Id             uuid.UUID `json:"id"`
	Favorite       *bool     `json:"favorite,omitempty"`
	FileObjectName *string   `json:"file_object_name,omitempty"`
}

// UpdateMessageRequest is the administrative edit path; normal messages
// are immutable after insert.
type UpdateMessageRequest struct {
	Id      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

type TagRequest struct {
	ChatId uuid.UUID `json:"chat_id"`
	Name   string    `json:"name"`
}

type TagResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
