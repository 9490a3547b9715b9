package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RequestLog is one audit row per HTTP call, written by the audit
// middleware after the response is produced.
type RequestLog struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       *uuid.UUID     `gorm:"type:uuid;index"` // nil on unauthenticated routes
	Endpoint     string         `gorm:"type:varchar(255);not null;index"`
	Method       string         `gorm:"type:varchar(10);not null"`
	StatusCode   int            `gorm:"not null;index"`
	LatencyMs    int64          `gorm:"not null"`
	RequestBody  datatypes.JSON `gorm:"type:jsonb"`
	ResponseBody datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index"`
}

func (RequestLog) TableName() string {
	return "request_logs"
}
