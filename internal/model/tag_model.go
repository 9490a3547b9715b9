package model

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Tag) TableName() string {
	return "tags"
}

// TagGroup joins chats and tags many-to-many.
type TagGroup struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatId    uuid.UUID `gorm:"type:uuid;not null;index:idx_tag_groups_chat_tag,unique"`
	TagId     uuid.UUID `gorm:"type:uuid;not null;index:idx_tag_groups_chat_tag,unique"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (TagGroup) TableName() string {
	return "tag_groups"
}
