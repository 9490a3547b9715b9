package mapper

import (
	"medichat-be/internal/entity"
	"medichat-be/internal/model"

	"gorm.io/datatypes"
)

type RequestLogMapper struct{}

func NewRequestLogMapper() *RequestLogMapper {
	return &RequestLogMapper{}
}

func (m *RequestLogMapper) ToEntity(l *model.RequestLog) *entity.RequestLog {
	if l == nil {
		return nil
	}
	return &entity.RequestLog{
		Id:           l.Id,
		UserId:       l.UserId,
		Endpoint:     l.Endpoint,
		Method:       l.Method,
		StatusCode:   l.StatusCode,
		LatencyMs:    l.LatencyMs,
		RequestBody:  []byte(l.RequestBody),
		ResponseBody: []byte(l.ResponseBody),
		CreatedAt:    l.CreatedAt,
	}
}

func (m *RequestLogMapper) ToModel(l *entity.RequestLog) *model.RequestLog {
	if l == nil {
		return nil
	}
	return &model.RequestLog{
		Id:           l.Id,
		UserId:       l.UserId,
		Endpoint:     l.Endpoint,
		Method:       l.Method,
		StatusCode:   l.StatusCode,
		LatencyMs:    l.LatencyMs,
		RequestBody:  datatypes.JSON(l.RequestBody),
		ResponseBody: datatypes.JSON(l.ResponseBody),
		CreatedAt:    l.CreatedAt,
	}
}
