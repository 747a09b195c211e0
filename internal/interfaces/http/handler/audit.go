package handler

import (
	appaudit "github.com/backoffice/backend/internal/application/audit"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditHandler handles audit trail query endpoints
type AuditHandler struct {
	BaseHandler
	auditService *appaudit.Service
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService *appaudit.Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List lists audit entries, newest first
// GET /api/v1/audit/logs
func (h *AuditHandler) List(c *gin.Context) {
	var filter appaudit.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	entries, total, err := h.auditService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, entries, total, filter.Page, filter.PageSize)
}

// ListByUser lists audit entries recorded for one user
// GET /api/v1/audit/users/:id/logs
func (h *AuditHandler) ListByUser(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	userID := uuid.MustParse(idReq.ID)

	var filter appaudit.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}
	filter.UserID = &userID
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	entries, total, err := h.auditService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, entries, total, filter.Page, filter.PageSize)
}
