// Package service implements the agents read model.
package service

import (
	"context"
	"errors"

	"varniya_crm_backend/internal/users/repository"
	"varniya_crm_backend/internal/users/transport"
	"varniya_crm_backend/platform/apperr"
	"varniya_crm_backend/platform/logger"
)

const defaultListLimit = 50

type Service struct {
	repo *repository.Repository
	log  *logger.Logger
}

func New(repo *repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) GetByID(ctx context.Context, id int64) (transport.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.UserResponse{}, apperr.NotFound("user %d not found", id)
	}
	if err != nil {
		s.log.DatabaseError("users.get", err)
		return transport.UserResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load user", err)
	}
	return toUserResponse(user), nil
}

func (s *Service) List(ctx context.Context, req transport.ListUsersRequest) (transport.UserListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var role *string
	if req.Role != nil {
		v := string(*req.Role)
		role = &v
	}

	users, total, err := s.repo.List(ctx, repository.ListParams{
		Role:   role,
		Active: req.Active,
		Limit:  limit,
		Offset: req.Offset,
	})
	if err != nil {
		s.log.DatabaseError("users.list", err)
		return transport.UserListResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list users", err)
	}

	items := make([]transport.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, toUserResponse(user))
	}

	return transport.UserListResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: req.Offset,
	}, nil
}

func toUserResponse(user repository.User) transport.UserResponse {
	return transport.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      transport.Role(user.Role),
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}
