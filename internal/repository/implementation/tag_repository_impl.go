package implementation

import (
	"context"
	"errors"

	"medichat-be/internal/entity"
	"medichat-be/internal/mapper"
	"medichat-be/internal/model"
	"medichat-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TagMapper
}

func NewTagRepository(db *gorm.DB) contract.TagRepository {
	return &TagRepositoryImpl{
		db:     db,
		mapper: mapper.NewTagMapper(),
	}
}

func (r *TagRepositoryImpl) FindOrCreateByName(ctx context.Context, name string) (*entity.Tag, error) {
	var m model.Tag
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	if err == nil {
		return r.mapper.ToEntity(&m), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m = model.Tag{Id: uuid.New(), Name: name}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TagRepositoryImpl) Attach(ctx context.Context, chatId, tagId uuid.UUID) error {
	group := model.TagGroup{Id: uuid.New(), ChatId: chatId, TagId: tagId}
	// Attaching an already-attached tag is a no-op.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&group).Error
}

func (r *TagRepositoryImpl) Detach(ctx context.Context, chatId, tagId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("chat_id = ? AND tag_id = ?", chatId, tagId).
		Delete(&model.TagGroup{}).Error
}

func (r *TagRepositoryImpl) FindByChat(ctx context.Context, chatId uuid.UUID) ([]*entity.Tag, error) {
	var models []*model.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN tag_groups ON tag_groups.tag_id = tags.id").
		Where("tag_groups.chat_id = ?", chatId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	tags := make([]*entity.Tag, len(models))
	for i, m := range models {
		tags[i] = r.mapper.ToEntity(m)
	}
	return tags, nil
}
