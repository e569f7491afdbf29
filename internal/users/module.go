// Package users provides the agents read model bounded context.
package users

import (
	apphttp "varniya_crm_backend/internal/http"
	"varniya_crm_backend/internal/users/handler"
	"varniya_crm_backend/internal/users/repository"
	"varniya_crm_backend/internal/users/service"
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
	return "users"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	usersGroup := ctx.V1.Group("/users")
	m.handler.RegisterRoutes(usersGroup)
}

var _ apphttp.Module = (*Module)(nil)
