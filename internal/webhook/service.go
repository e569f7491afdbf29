package webhook

import (
	"context"
	"errors"
	"time"

	"varniya_crm_backend/internal/events"
	"varniya_crm_backend/internal/leads/domain"
	leadsrepo "varniya_crm_backend/internal/leads/repository"
	"varniya_crm_backend/internal/leads/scoring"
	"varniya_crm_backend/platform/apperr"
	"varniya_crm_backend/platform/logger"
	"varniya_crm_backend/platform/phone"
)

// Service processes inbound WATI messages: dedupe by phone, or create a
// fresh flat-scored lead.
type Service struct {
	leads *leadsrepo.Repository
	bus   events.Bus
	log   *logger.Logger
}

func NewService(leads *leadsrepo.Repository, bus events.Bus, log *logger.Logger) *Service {
	return &Service{leads: leads, bus: bus, log: log}
}

// WatiMessageResult reports what an inbound message did.
type WatiMessageResult struct {
	LeadID  int64 `json:"leadId"`
	NewLead bool  `json:"newLead"`
}

// HandleWatiMessage applies the inbound-message rule: a known phone number
// only gets its contact timestamps bumped, with no score change; an unknown
// one becomes a new lead with the flat WATI score.
func (s *Service) HandleWatiMessage(ctx context.Context, req WatiMessageRequest) (WatiMessageResult, error) {
	normalized := phone.NormalizeE164(req.Phone)
	if normalized == "" {
		return WatiMessageResult{}, apperr.BadRequest("phone is required")
	}

	existing, err := s.leads.GetByPhone(ctx, normalized)
	if err != nil && !errors.Is(err, leadsrepo.ErrNotFound) {
		s.log.DatabaseError("webhook.get_by_phone", err)
		return WatiMessageResult{}, apperr.Wrap(apperr.KindInternal, "failed to look up lead", err)
	}

	if err == nil {
		if _, err := s.leads.TouchContact(ctx, existing.ID); err != nil {
			s.log.DatabaseError("webhook.touch_contact", err)
			return WatiMessageResult{}, apperr.Wrap(apperr.KindInternal, "failed to bump lead contact", err)
		}

		s.bus.Publish(ctx, events.WatiMessageReceived{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    existing.ID,
			Phone:     normalized,
			IsNewLead: false,
		})
		s.log.WebhookEvent("wati", true, "")

		return WatiMessageResult{LeadID: existing.ID, NewLead: false}, nil
	}

	now := time.Now()
	lead, err := s.leads.Create(ctx, leadsrepo.CreateLeadParams{
		Name:          req.Name,
		Phone:         &normalized,
		Stage:         domain.StageRawLead,
		Medium:        domain.MediumWati,
		Source:        domain.SourceDirectUnknown,
		HighIntent:    false,
		RequestType:   domain.RequestTypeProductEnquiry,
		LeadScore:     scoring.WatiLeadScore,
		LastContactAt: &now,
	})
	if err != nil {
		s.log.DatabaseError("webhook.create_lead", err)
		return WatiMessageResult{}, apperr.Wrap(apperr.KindInternal, "failed to create lead", err)
	}

	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent:  events.NewBaseEvent(),
		LeadID:     lead.ID,
		Phone:      lead.Phone,
		Name:       lead.Name,
		Medium:     string(lead.Medium),
		Source:     string(lead.Source),
		LeadScore:  lead.LeadScore,
		HighIntent: lead.HighIntent,
	})
	s.bus.Publish(ctx, events.WatiMessageReceived{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		Phone:     normalized,
		IsNewLead: true,
	})
	s.log.WebhookEvent("wati", true, "")

	return WatiMessageResult{LeadID: lead.ID, NewLead: true}, nil
}
