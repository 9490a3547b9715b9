package entity

import (
	"github.com/google/uuid"
)

type Tag struct {
	Id   uuid.UUID
	Name string
}

type TagGroup struct {
	Id     uuid.UUID
	ChatId uuid.UUID
	TagId  uuid.UUID
}
