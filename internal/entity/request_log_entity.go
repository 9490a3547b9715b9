package entity

import (
	"time"

	"github.com/google/uuid"
)

type RequestLog struct {
	Id           uuid.UUID
	UserId       *uuid.UUID
	Endpoint     string
	Method       string
	StatusCode   int
	LatencyMs    int64
	RequestBody  []byte
	ResponseBody []byte
	CreatedAt    time.Time
}
