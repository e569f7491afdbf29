// Package followups provides the follow-up scheduling bounded context.
package followups

import (
	"varniya_crm_backend/internal/events"
	"varniya_crm_backend/internal/followups/handler"
	"varniya_crm_backend/internal/followups/repository"
	"varniya_crm_backend/internal/followups/service"
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
	return "followups"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	followUpsGroup := ctx.V1.Group("/follow-ups")
	m.handler.RegisterRoutes(followUpsGroup)
}

var _ apphttp.Module = (*Module)(nil)
