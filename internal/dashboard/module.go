// Package dashboard provides the read-only KPI rollup bounded context.
package dashboard

import (
	"varniya_crm_backend/internal/dashboard/handler"
	"varniya_crm_backend/internal/dashboard/repository"
	"varniya_crm_backend/internal/dashboard/service"
	apphttp "varniya_crm_backend/internal/http"
	"varniya_crm_backend/platform/logger"
	"varniya_crm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "dashboard"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	dashboardGroup := ctx.V1.Group("/dashboard")
	m.handler.RegisterRoutes(dashboardGroup)
}

var _ apphttp.Module = (*Module)(nil)
