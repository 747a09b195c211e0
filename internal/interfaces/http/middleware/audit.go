package middleware

import (
	"bytes"
	"io"
	"time"

	appaudit "github.com/backoffice/backend/internal/application/audit"
	"github.com/backoffice/backend/internal/domain/audit"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditConfig holds configuration for the audit trail middleware
type AuditConfig struct {
	// ExcludedPaths are request paths that are never audited
	ExcludedPaths []string
}

// AuditTrail records every non-excluded request after the response is
// written. The request body is captured only for mutating methods; reads
// are recorded without a payload. Recording happens outside the business
// transaction, so a request that succeeded is audited even if the append
// itself fails.
func AuditTrail(service *appaudit.Service, cfg AuditConfig) gin.HandlerFunc {
	excluded := make(map[string]struct{}, len(cfg.ExcludedPaths))
	for _, p := range cfg.ExcludedPaths {
		excluded[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, skip := excluded[c.Request.URL.Path]; skip {
			c.Next()
			return
		}
		var body []byte
		if isMutating(c.Request.Method) && c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}
		payload := audit.RedactPayload(body)

		start := time.Now()
		c.Next()

		var userID *uuid.UUID
		if raw := GetJWTUserID(c); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				userID = &id
			}
		}

		entry := audit.NewEntry(
			userID,
			GetJWTUsername(c),
			c.Request.URL.Path,
			c.Request.Method,
			payload,
			c.ClientIP(),
			c.Request.UserAgent(),
			c.Writer.Status(),
			time.Since(start),
		)
		service.Record(c.Request.Context(), entry)
	}
}

func isMutating(method string) bool {
	switch method {
	case "POST", "PUT", "PATCH", "DELETE":
		return true
	}
	return false
}
