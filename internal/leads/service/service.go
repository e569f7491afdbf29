// Package service implements the lead lifecycle operations: create, update
// with conditional rescoring and the stage transition guard, notes, and reads.
package service

import (
	"context"
	"errors"

	"varniya_crm_backend/internal/events"
	"varniya_crm_backend/internal/leads/domain"
	"varniya_crm_backend/internal/leads/repository"
	"varniya_crm_backend/internal/leads/scoring"
	"varniya_crm_backend/internal/leads/transport"
	"varniya_crm_backend/platform/apperr"
	"varniya_crm_backend/platform/logger"
	"varniya_crm_backend/platform/phone"
)

const defaultListLimit = 50

type Service struct {
	repo *repository.Repository
	bus  events.Bus
	log  *logger.Logger
}

func New(repo *repository.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

// Create persists a new lead. The stage defaults to raw_lead and the score
// comes from the creation formula; lead_score is never caller-supplied here.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	stage := domain.StageRawLead
	if req.Stage != nil {
		stage = *req.Stage
	}

	leadPhone := req.Phone
	if leadPhone != nil {
		normalized := phone.NormalizeE164(*leadPhone)
		leadPhone = &normalized
	}

	score := scoring.CreateScore(req.HighIntent, req.Source, req.RequestType)

	lead, err := s.repo.Create(ctx, repository.CreateLeadParams{
		Name:            req.Name,
		Phone:           leadPhone,
		Email:           req.Email,
		Stage:           stage,
		Medium:          req.Medium,
		Source:          req.Source,
		HighIntent:      req.HighIntent,
		RequestType:     req.RequestType,
		Urgency:         req.Urgency,
		SpecialDate:     req.SpecialDate,
		Occasion:        req.Occasion,
		AssignedAgentID: req.AssignedAgentID,
		LeadScore:       score,
	})
	if err != nil {
		s.log.DatabaseError("leads.create", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to create lead", err)
	}

	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent:       events.NewBaseEvent(),
		LeadID:          lead.ID,
		Phone:           lead.Phone,
		Name:            lead.Name,
		Medium:          string(lead.Medium),
		Source:          string(lead.Source),
		LeadScore:       lead.LeadScore,
		HighIntent:      lead.HighIntent,
		AssignedAgentID: lead.AssignedAgentID,
	})

	return toLeadResponse(lead), nil
}

// Update applies a partial update. The stage guard runs against the stored
// follow_up_status before anything is persisted, and the score is recomputed
// from scratch only when the patch touches high_intent, stage or urgency.
func (s *Service) Update(ctx context.Context, id int64, req transport.UpdateLeadRequest) (transport.LeadResponse, error) {
	stored, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.LeadResponse{}, apperr.NotFound("lead %d not found", id)
	}
	if err != nil {
		s.log.DatabaseError("leads.get", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load lead", err)
	}

	if req.Stage != nil && !domain.CanTransitionStage(stored.FollowUpStatus, *req.Stage) {
		return transport.LeadResponse{}, apperr.InvalidTransition(
			"cannot move a completed sale back to a pre-sale stage")
	}

	params := repository.UpdateLeadParams{
		Name:               req.Name.Value,
		NameSet:            req.Name.Set,
		Phone:              req.Phone.Value,
		PhoneSet:           req.Phone.Set,
		Email:              req.Email.Value,
		EmailSet:           req.Email.Set,
		Stage:              req.Stage,
		Status:             req.Status.Value,
		StatusSet:          req.Status.Set,
		FollowUpStatus:     req.FollowUpStatus.Value,
		FollowUpStatusSet:  req.FollowUpStatus.Set,
		Medium:             req.Medium,
		Source:             req.Source,
		HighIntent:         req.HighIntent,
		RequestType:        req.RequestType,
		Urgency:            req.Urgency.Value,
		UrgencySet:         req.Urgency.Set,
		SpecialDate:        req.SpecialDate.Value,
		SpecialDateSet:     req.SpecialDate.Set,
		Occasion:           req.Occasion.Value,
		OccasionSet:        req.Occasion.Set,
		AssignedAgentID:    req.AssignedAgentID.Value,
		AssignedAgentIDSet: req.AssignedAgentID.Set,
		LeadScore:          req.LeadScore,
	}

	if scoring.TriggersRescore(req.HighIntent != nil, req.Stage != nil, req.Urgency.Set) {
		rescored := scoring.UpdateScore(effectiveScoringView(stored, req))
		params.LeadScore = &rescored
	}

	lead, err := s.repo.Update(ctx, id, params)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.LeadResponse{}, apperr.NotFound("lead %d not found", id)
	}
	if err != nil {
		s.log.DatabaseError("leads.update", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to update lead", err)
	}

	if req.Stage != nil && *req.Stage != stored.Stage {
		s.bus.Publish(ctx, events.LeadStageChanged{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    lead.ID,
			OldStage:  string(stored.Stage),
			NewStage:  string(lead.Stage),
		})
	}

	return toLeadResponse(lead), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.LeadResponse{}, apperr.NotFound("lead %d not found", id)
	}
	if err != nil {
		s.log.DatabaseError("leads.get", err)
		return transport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load lead", err)
	}
	return toLeadResponse(lead), nil
}

func (s *Service) List(ctx context.Context, req transport.ListLeadsRequest) (transport.LeadListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	leads, total, err := s.repo.List(ctx, repository.ListParams{
		Stage:           req.Stage,
		Status:          req.Status,
		FollowUpStatus:  req.FollowUpStatus,
		Source:          req.Source,
		AssignedAgentID: req.AssignedAgentID,
		HighIntent:      req.HighIntent,
		Limit:           limit,
		Offset:          req.Offset,
	})
	if err != nil {
		s.log.DatabaseError("leads.list", err)
		return transport.LeadListResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list leads", err)
	}

	items := make([]transport.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		items = append(items, toLeadResponse(lead))
	}

	return transport.LeadListResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: req.Offset,
	}, nil
}

func toLeadResponse(lead repository.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:              lead.ID,
		Name:            lead.Name,
		Phone:           lead.Phone,
		Email:           lead.Email,
		Stage:           lead.Stage,
		Status:          lead.Status,
		FollowUpStatus:  lead.FollowUpStatus,
		Medium:          lead.Medium,
		Source:          lead.Source,
		HighIntent:      lead.HighIntent,
		RequestType:     lead.RequestType,
		Urgency:         lead.Urgency,
		SpecialDate:     lead.SpecialDate,
		Occasion:        lead.Occasion,
		AssignedAgentID: lead.AssignedAgentID,
		LeadScore:       lead.LeadScore,
		LastContactAt:   lead.LastContactAt,
		CreatedAt:       lead.CreatedAt,
		UpdatedAt:       lead.UpdatedAt,
	}
}
