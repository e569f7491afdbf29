// Package service implements follow-up scheduling and completion.
package service

import (
	"context"
	"errors"
	"time"

	"varniya_crm_backend/internal/events"
	"varniya_crm_backend/internal/followups/repository"
	"varniya_crm_backend/internal/followups/transport"
	"varniya_crm_backend/platform/apperr"
	"varniya_crm_backend/platform/logger"
)

const defaultListLimit = 50

type Service struct {
	repo *repository.Repository
	bus  events.Bus
	log  *logger.Logger
	now  func() time.Time
}

func New(repo *repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log, now: time.Now}
}

// Schedule records a follow-up activity. The scheduled time must be strictly
// in the future, and both the lead and the agent must exist; the two missing
// cases carry distinct messages.
func (s *Service) Schedule(ctx context.Context, req transport.ScheduleFollowUpRequest) (transport.FollowUpResponse, error) {
	if !isStrictlyFuture(req.ScheduledAt, s.now()) {
		return transport.FollowUpResponse{}, apperr.InvalidSchedule("scheduled time must be in the future")
	}

	leadExists, err := s.repo.LeadExists(ctx, req.LeadID)
	if err != nil {
		s.log.DatabaseError("followups.lead_exists", err)
		return transport.FollowUpResponse{}, apperr.Wrap(apperr.KindInternal, "failed to check lead", err)
	}
	if !leadExists {
		return transport.FollowUpResponse{}, apperr.NotFound("lead %d not found", req.LeadID)
	}

	agentExists, err := s.repo.AgentExists(ctx, req.AgentID)
	if err != nil {
		s.log.DatabaseError("followups.agent_exists", err)
		return transport.FollowUpResponse{}, apperr.Wrap(apperr.KindInternal, "failed to check agent", err)
	}
	if !agentExists {
		return transport.FollowUpResponse{}, apperr.NotFound("agent %d not found", req.AgentID)
	}

	fu, err := s.repo.Create(ctx, repository.CreateFollowUpParams{
		LeadID:      req.LeadID,
		AgentID:     req.AgentID,
		Title:       req.Title,
		Description: req.Description,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		s.log.DatabaseError("followups.create", err)
		return transport.FollowUpResponse{}, apperr.Wrap(apperr.KindInternal, "failed to schedule follow-up", err)
	}

	s.bus.Publish(ctx, events.FollowUpScheduled{
		BaseEvent:  events.NewBaseEvent(),
		FollowUpID: fu.ID,
		LeadID:     fu.LeadID,
		AgentID:    fu.AgentID,
	})

	return toFollowUpResponse(fu), nil
}

// Complete stamps the activity done and returns the full updated record.
func (s *Service) Complete(ctx context.Context, id int64) (transport.FollowUpResponse, error) {
	fu, err := s.repo.Complete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.FollowUpResponse{}, apperr.NotFound("follow-up %d not found", id)
	}
	if err != nil {
		s.log.DatabaseError("followups.complete", err)
		return transport.FollowUpResponse{}, apperr.Wrap(apperr.KindInternal, "failed to complete follow-up", err)
	}

	return toFollowUpResponse(fu), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (transport.FollowUpResponse, error) {
	fu, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.FollowUpResponse{}, apperr.NotFound("follow-up %d not found", id)
	}
	if err != nil {
		s.log.DatabaseError("followups.get", err)
		return transport.FollowUpResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load follow-up", err)
	}
	return toFollowUpResponse(fu), nil
}

func (s *Service) List(ctx context.Context, req transport.ListFollowUpsRequest) (transport.FollowUpListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	followUps, total, err := s.repo.List(ctx, repository.ListParams{
		LeadID:    req.LeadID,
		AgentID:   req.AgentID,
		Completed: req.Completed,
		Limit:     limit,
		Offset:    req.Offset,
	})
	if err != nil {
		s.log.DatabaseError("followups.list", err)
		return transport.FollowUpListResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list follow-ups", err)
	}

	items := make([]transport.FollowUpResponse, 0, len(followUps))
	for _, fu := range followUps {
		items = append(items, toFollowUpResponse(fu))
	}

	return transport.FollowUpListResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: req.Offset,
	}, nil
}

// isStrictlyFuture rejects "now" itself, not just the past.
func isStrictlyFuture(scheduledAt, now time.Time) bool {
	return scheduledAt.After(now)
}

func toFollowUpResponse(fu repository.FollowUp) transport.FollowUpResponse {
	return transport.FollowUpResponse{
		ID:          fu.ID,
		LeadID:      fu.LeadID,
		AgentID:     fu.AgentID,
		Title:       fu.Title,
		Description: fu.Description,
		ScheduledAt: fu.ScheduledAt,
		Completed:   fu.Completed,
		CompletedAt: fu.CompletedAt,
		CreatedAt:   fu.CreatedAt,
	}
}
