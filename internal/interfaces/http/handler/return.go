package handler

import (
	appordering "github.com/backoffice/backend/internal/application/ordering"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/backoffice/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReturnHandler handles return endpoints
type ReturnHandler struct {
	BaseHandler
	returnService *appordering.ReturnService
}

// NewReturnHandler creates a new ReturnHandler
func NewReturnHandler(returnService *appordering.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

// Create processes a return for an order: restocks every line, wipes the
// payment ledger and marks the order returned, all in one transaction
// POST /api/v1/returns
func (h *ReturnHandler) Create(c *gin.Context) {
	var req appordering.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	userID, err := uuid.Parse(middleware.GetJWTUserID(c))
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.returnService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByOrder retrieves the return recorded for an order
// GET /api/v1/returns/order/:id
func (h *ReturnHandler) GetByOrder(c *gin.Context) {
	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}
	orderID := uuid.MustParse(idReq.ID)

	resp, err := h.returnService.GetByOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List lists returns, newest first
// GET /api/v1/returns
func (h *ReturnHandler) List(c *gin.Context) {
	var filter appordering.ReturnListFilter
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

	returns, total, err := h.returnService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, returns, total, filter.Page, filter.PageSize)
}
