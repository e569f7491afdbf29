// Package browsers provides the browser session tracking bounded context.
package browsers

import (
	"varniya_crm_backend/internal/browsers/handler"
	"varniya_crm_backend/internal/browsers/repository"
	"varniya_crm_backend/internal/browsers/service"
	"varniya_crm_backend/internal/events"
	apphttp "varniya_crm_backend/internal/http"
	"varniya_crm_backend/platform/logger"
	"varniya_crm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Module struct {
	handler *handler.Handler
	svc     *service.Service
}

func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, eventBus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, svc: svc}
}

func (m *Module) Name() string {
	return "browsers"
}

// Service returns the browser service for the webhook ingestion endpoint.
func (m *Module) Service() *service.Service {
	return m.svc
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	browsersGroup := ctx.V1.Group("/browsers")
	m.handler.RegisterRoutes(browsersGroup)
}

var _ apphttp.Module = (*Module)(nil)
