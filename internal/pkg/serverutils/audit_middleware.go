package serverutils

import (
	"encoding/json"
	"time"

	"medichat-be/internal/entity"
	"medichat-be/internal/pkg/logger"
	"medichat-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const snapshotLimit = 4096

// Routes whose request bodies carry credentials; their payload snapshot is
// replaced with a marker instead of being stored.
var redactedPaths = map[string]bool{
	"/auth":  true,
	"/users": true,
}

var redactedSnapshot = []byte(`{"redacted":true}`)

// NewAuditMiddleware persists one request_logs row per HTTP call:
// endpoint, method, status, latency and JSON snapshots of both bodies.
// Audit failures are logged and never surface to the caller.
func NewAuditMiddleware(factory unitofwork.RepositoryFactory, log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		requestBody := snapshotBody(ctx.Path(), ctx.Body())

		err := ctx.Next()
		if err != nil {
			return err
		}

		latency := time.Since(start)
		responseBody := truncate(ctx.Response().Body())

		var userId *uuid.UUID
		if raw, ok := ctx.Locals(LocalsUserId).(string); ok {
			if parsed, parseErr := uuid.Parse(raw); parseErr == nil {
				userId = &parsed
			}
		}

		record := entity.RequestLog{
			Id:           uuid.New(),
			UserId:       userId,
			Endpoint:     ctx.Path(),
			Method:       ctx.Method(),
			StatusCode:   ctx.Response().StatusCode(),
			LatencyMs:    latency.Milliseconds(),
			RequestBody:  requestBody,
			ResponseBody: responseBody,
			CreatedAt:    time.Now(),
		}

		uow := factory.NewUnitOfWork(ctx.Context())
		if auditErr := uow.RequestLogRepository().Create(ctx.Context(), &record); auditErr != nil {
			log.Warn("audit", "failed to persist request log", map[string]interface{}{
				"error":    auditErr.Error(),
				"endpoint": record.Endpoint,
			})
		}

		return nil
	}
}

func snapshotBody(path string, body []byte) []byte {
	if redactedPaths[path] {
		return redactedSnapshot
	}
	return truncate(body)
}

// truncate keeps snapshots bounded and always valid JSON.
func truncate(body []byte) []byte {
	if len(body) == 0 {
		return nil
	}
	if len(body) > snapshotLimit || !json.Valid(body) {
		quoted, err := json.Marshal(string(body[:min(len(body), snapshotLimit)]))
		if err != nil {
			return redactedSnapshot
		}
		return quoted
	}
	return body
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
