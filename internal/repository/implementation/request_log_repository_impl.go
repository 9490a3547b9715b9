package implementation

import (
	"context"

	"medichat-be/internal/entity"
	"medichat-be/internal/mapper"
	"medichat-be/internal/repository/contract"

	"gorm.io/gorm"
)

type RequestLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RequestLogMapper
}

func NewRequestLogRepository(db *gorm.DB) contract.RequestLogRepository {
	return &RequestLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewRequestLogMapper(),
	}
}

func (r *RequestLogRepositoryImpl) Create(ctx context.Context, log *entity.RequestLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}
