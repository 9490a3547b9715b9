package contract

import (
	"context"

	"medichat-be/internal/entity"
	"medichat-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Save(ctx context.Context, user *entity.User) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business specific
	MarkDeleted(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdatePhotoObject(ctx context.Context, id uuid.UUID, objectKey *string) error
}
