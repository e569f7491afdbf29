// Package webhook provides the inbound integration bounded context: the
// WATI message endpoint and the browser-analytics ingestion endpoint.
package webhook

import (
	browserservice "varniya_crm_backend/internal/browsers/service"
	"varniya_crm_backend/internal/events"
	apphttp "varniya_crm_backend/internal/http"
	leadsrepo "varniya_crm_backend/internal/leads/repository"
	"varniya_crm_backend/platform/config"
	"varniya_crm_backend/platform/logger"
	"varniya_crm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the webhook bounded context module implementing http.Module.
type Module struct {
	handler *Handler
	cfg     config.WebhookConfig
}

// NewModule creates and initializes the webhook module with all its dependencies.
func NewModule(pool *pgxpool.Pool, browsers *browserservice.Service, eventBus events.Bus, val *validator.Validator, cfg config.WebhookConfig, log *logger.Logger) *Module {
	svc := NewService(leadsrepo.New(pool), eventBus, log)
	h := NewHandler(svc, browsers, val)

	return &Module{handler: h, cfg: cfg}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "webhook"
}

// RegisterRoutes mounts webhook routes on the provided router context.
// All inbound integration endpoints share the token guard.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Webhooks
	group.Use(TokenAuthMiddleware(m.cfg))
	group.POST("/wati/messages", m.handler.HandleWatiMessage)
	group.POST("/browsers", m.handler.HandleBrowserEvent)
}

var _ apphttp.Module = (*Module)(nil)
