package webhook

import (
	"net/http"

	browserservice "varniya_crm_backend/internal/browsers/service"
	browsertransport "varniya_crm_backend/internal/browsers/transport"
	"varniya_crm_backend/internal/http/response"
	"varniya_crm_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// WatiMessageRequest is the inbound WATI message payload.
type WatiMessageRequest struct {
	Phone     string  `json:"phone" validate:"required,min=5,max=20"`
	Name      *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Message   *string `json:"message,omitempty" validate:"omitempty,max=4000"`
	Timestamp string  `json:"timestamp" validate:"omitempty,max=64"`
}

type Handler struct {
	svc      *Service
	browsers *browserservice.Service
	val      *validator.Validator
}

func NewHandler(svc *Service, browsers *browserservice.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, browsers: browsers, val: val}
}

func (h *Handler) HandleWatiMessage(c *gin.Context) {
	var req WatiMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		response.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.HandleWatiMessage(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, result)
}

// HandleBrowserEvent ingests a browser-analytics event and scores the
// session.
func (h *Handler) HandleBrowserEvent(c *gin.Context) {
	var req browsertransport.IngestBrowserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		response.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	browser, err := h.browsers.Ingest(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, browser)
}
