// Package service implements browser session ingestion and the
// browser-to-lead conversion flow.
package service

import (
	"context"
	"errors"

	"varniya_crm_backend/internal/browsers/repository"
	"varniya_crm_backend/internal/browsers/transport"
	"varniya_crm_backend/internal/events"
	"varniya_crm_backend/internal/leads/domain"
	leadsrepo "varniya_crm_backend/internal/leads/repository"
	"varniya_crm_backend/internal/leads/scoring"
	leadstransport "varniya_crm_backend/internal/leads/transport"
	"varniya_crm_backend/platform/apperr"
	"varniya_crm_backend/platform/logger"
	"varniya_crm_backend/platform/phone"
)

const defaultListLimit = 50

// Store is the persistence surface the service needs from the browsers
// repository.
type Store interface {
	Create(ctx context.Context, params repository.CreateBrowserParams) (repository.Browser, error)
	GetByID(ctx context.Context, id int64) (repository.Browser, error)
	Convert(ctx context.Context, browserID int64, lead leadsrepo.CreateLeadParams) (leadsrepo.Lead, repository.Browser, error)
	List(ctx context.Context, params repository.ListParams) ([]repository.Browser, int, error)
}

type Service struct {
	repo Store
	bus  events.Bus
	log  *logger.Logger
}

func New(repo Store, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

// Ingest records a browser session from the analytics feed. The intent score
// is computed once here and never recomputed.
func (s *Service) Ingest(ctx context.Context, req transport.IngestBrowserRequest) (transport.BrowserResponse, error) {
	score := scoring.BrowserIntentScore(req.PagesVisited, req.Actions)

	browser, err := s.repo.Create(ctx, repository.CreateBrowserParams{
		SessionID:       req.SessionID,
		UserAgent:       req.UserAgent,
		IPAddress:       req.IPAddress,
		PagesVisited:    req.PagesVisited,
		TimeSpent:       req.TimeSpent,
		Actions:         req.Actions,
		HighIntentScore: score,
	})
	if errors.Is(err, repository.ErrSessionExists) {
		return transport.BrowserResponse{}, apperr.Conflict("browser session already recorded")
	}
	if err != nil {
		s.log.DatabaseError("browsers.create", err)
		return transport.BrowserResponse{}, apperr.Wrap(apperr.KindInternal, "failed to record browser session", err)
	}

	return toBrowserResponse(browser), nil
}

// Convert turns a browser session into a lead. The lead gets
// min(100, 25 + intent score) and high_intent is always forced true; the
// lead insert and the browser flag update commit together or not at all.
func (s *Service) Convert(ctx context.Context, browserID int64, req transport.ConvertBrowserRequest) (leadstransport.LeadResponse, error) {
	browser, err := s.repo.GetByID(ctx, browserID)
	if errors.Is(err, repository.ErrNotFound) {
		return leadstransport.LeadResponse{}, apperr.NotFound("browser session %d not found", browserID)
	}
	if err != nil {
		s.log.DatabaseError("browsers.get", err)
		return leadstransport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load browser session", err)
	}

	if browser.ConvertedToLead {
		return leadstransport.LeadResponse{}, apperr.Conflict("browser session already converted to a lead")
	}

	leadPhone := req.Phone
	if leadPhone != nil {
		normalized := phone.NormalizeE164(*leadPhone)
		leadPhone = &normalized
	}

	score := scoring.ConversionScore(browser.HighIntentScore)

	stage := domain.StageRawLead
	if req.Stage != nil {
		stage = *req.Stage
	}

	lead, updated, err := s.repo.Convert(ctx, browserID, leadsrepo.CreateLeadParams{
		Name:            req.Name,
		Phone:           leadPhone,
		Email:           req.Email,
		Stage:           stage,
		Medium:          req.Medium,
		Source:          req.Source,
		HighIntent:      true,
		RequestType:     req.RequestType,
		Urgency:         req.Urgency,
		SpecialDate:     req.SpecialDate,
		Occasion:        req.Occasion,
		AssignedAgentID: req.AssignedAgentID,
		LeadScore:       score,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return leadstransport.LeadResponse{}, apperr.NotFound("browser session %d not found", browserID)
	}
	if err != nil {
		s.log.DatabaseError("browsers.convert", err)
		return leadstransport.LeadResponse{}, apperr.Wrap(apperr.KindInternal, "failed to convert browser session", err)
	}

	s.bus.Publish(ctx, events.BrowserConverted{
		BaseEvent:       events.NewBaseEvent(),
		BrowserID:       updated.ID,
		SessionID:       updated.SessionID,
		LeadID:          lead.ID,
		HighIntentScore: updated.HighIntentScore,
		LeadScore:       lead.LeadScore,
	})
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

func (s *Service) GetByID(ctx context.Context, id int64) (transport.BrowserResponse, error) {
	browser, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return transport.BrowserResponse{}, apperr.NotFound("browser session %d not found", id)
	}
	if err != nil {
		s.log.DatabaseError("browsers.get", err)
		return transport.BrowserResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load browser session", err)
	}
	return toBrowserResponse(browser), nil
}

func (s *Service) List(ctx context.Context, req transport.ListBrowsersRequest) (transport.BrowserListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	browsers, total, err := s.repo.List(ctx, repository.ListParams{
		Converted: req.Converted,
		MinScore:  req.MinScore,
		Limit:     limit,
		Offset:    req.Offset,
	})
	if err != nil {
		s.log.DatabaseError("browsers.list", err)
		return transport.BrowserListResponse{}, apperr.Wrap(apperr.KindInternal, "failed to list browser sessions", err)
	}

	items := make([]transport.BrowserResponse, 0, len(browsers))
	for _, browser := range browsers {
		items = append(items, toBrowserResponse(browser))
	}

	return transport.BrowserListResponse{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: req.Offset,
	}, nil
}

func toBrowserResponse(browser repository.Browser) transport.BrowserResponse {
	return transport.BrowserResponse{
		ID:              browser.ID,
		SessionID:       browser.SessionID,
		UserAgent:       browser.UserAgent,
		IPAddress:       browser.IPAddress,
		PagesVisited:    browser.PagesVisited,
		TimeSpent:       browser.TimeSpent,
		Actions:         browser.Actions,
		HighIntentScore: browser.HighIntentScore,
		ConvertedToLead: browser.ConvertedToLead,
		LeadID:          browser.LeadID,
		CreatedAt:       browser.CreatedAt,
		LastActivity:    browser.LastActivity,
	}
}

func toLeadResponse(lead leadsrepo.Lead) leadstransport.LeadResponse {
	return leadstransport.LeadResponse{
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
