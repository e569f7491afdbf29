// Package orders provides the order management bounded context.
package orders

import (
	"varniya_crm_backend/internal/events"
	apphttp "varniya_crm_backend/internal/http"
	"varniya_crm_backend/internal/orders/handler"
	"varniya_crm_backend/internal/orders/repository"
	"varniya_crm_backend/internal/orders/service"
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
	return "orders"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ordersGroup := ctx.V1.Group("/orders")
	m.handler.RegisterRoutes(ordersGroup)
}

var _ apphttp.Module = (*Module)(nil)
