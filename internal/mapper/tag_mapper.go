package mapper

import (
	"medichat-be/internal/entity"
	"medichat-be/internal/model"
)

type TagMapper struct{}

func NewTagMapper() *TagMapper {
	return &TagMapper{}
}

func (m *TagMapper) ToEntity(t *model.Tag) *entity.Tag {
	if t == nil {
		return nil
	}
	return &entity.Tag{Id: t.Id, Name: t.Name}
}

func (m *TagMapper) ToModel(t *entity.Tag) *model.Tag {
	if t == nil {
		return nil
	}
	return &model.Tag{Id: t.Id, Name: t.Name}
}

func (m *TagMapper) GroupToEntity(g *model.TagGroup) *entity.TagGroup {
	if g == nil {
		return nil
	}
	return &entity.TagGroup{Id: g.Id, ChatId: g.ChatId, TagId: g.TagId}
}

func (m *TagMapper) GroupToModel(g *entity.TagGroup) *model.TagGroup {
	if g == nil {
		return nil
	}
	return &model.TagGroup{Id: g.Id, ChatId: g.ChatId, TagId: g.TagId}
}
