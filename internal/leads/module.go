// Package leads provides the lead management bounded context module.
package leads

import (
	"varniya_crm_backend/internal/events"
	apphttp "varniya_crm_backend/internal/http"
	"varniya_crm_backend/internal/leads/handler"
	"varniya_crm_backend/internal/leads/repository"
	"varniya_crm_backend/internal/leads/service"
	"varniya_crm_backend/platform/logger"
	"varniya_crm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, eventBus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, svc: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the lead lifecycle service for other modules.
func (m *Module) Service() *service.Service {
	return m.svc
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	leadsGroup := ctx.V1.Group("/leads")
	m.handler.RegisterRoutes(leadsGroup)
}

var _ apphttp.Module = (*Module)(nil)
