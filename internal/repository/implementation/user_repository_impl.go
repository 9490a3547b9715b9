package implementation

import (
	"context"

	"medichat-be/internal/entity"
	"medichat-be/internal/mapper"
	"medichat-be/internal/model"
	"medichat-be/internal/repository/contract"
	"medichat-be/internal/repository/crud"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	*crud.Repository[model.User, entity.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	m := mapper.NewUserMapper()
	return &UserRepositoryImpl{
		Repository: crud.New(db, m.ToModel, m.ToEntity),
		db:         db,
	}
}

// MarkDeleted flips the logical removal flag. User rows are never dropped.
func (r *UserRepositoryImpl) MarkDeleted(ctx context.Context, id uuid.UUID) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"deleted": true})
}

func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"password_hash": hash})
}

func (r *UserRepositoryImpl) UpdatePhotoObject(ctx context.Context, id uuid.UUID, objectKey *string) error {
	return r.UpdateFields(ctx, id, map[string]interface{}{"photo_object": objectKey})
}
