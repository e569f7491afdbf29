package handler

import (
	"net/http"

	"varniya_crm_backend/internal/dashboard/service"
	"varniya_crm_backend/internal/dashboard/transport"
	"varniya_crm_backend/internal/http/response"
	"varniya_crm_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Stats)
}

func (h *Handler) Stats(c *gin.Context) {
	var req transport.DashboardStatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	stats, err := h.svc.Compute(c.Request.Context(), req.AgentID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, stats)
}
