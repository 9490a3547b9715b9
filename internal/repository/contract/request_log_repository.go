package contract

import (
	"context"

	"medichat-be/internal/entity"
)

type RequestLogRepository interface {
	Create(ctx context.Context, log *entity.RequestLog) error
}
