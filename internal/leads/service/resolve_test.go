package service

import (
	"testing"

	"varniya_crm_backend/internal/leads/domain"
	"varniya_crm_backend/internal/leads/repository"
	"varniya_crm_backend/internal/leads/transport"
)

func TestEffectiveScoringView_FallsBackToStored(t *testing.T) {
	urgency := domain.UrgencyTwoWeeks
	stored := repository.Lead{
		HighIntent: true,
		Stage:      domain.StageInContact,
		Urgency:    &urgency,
	}

	view := effectiveScoringView(stored, transport.UpdateLeadRequest{})

	if !view.HighIntent {
		t.Error("expected stored high_intent to carry through")
	}
	if view.Stage != domain.StageInContact {
		t.Errorf("expected stored stage, got %s", view.Stage)
	}
	if view.Urgency == nil || *view.Urgency != domain.UrgencyTwoWeeks {
		t.Errorf("expected stored urgency, got %v", view.Urgency)
	}
}

func TestEffectiveScoringView_PatchWins(t *testing.T) {
	storedUrgency := domain.UrgencyThreeMonths
	stored := repository.Lead{
		HighIntent: false,
		Stage:      domain.StageRawLead,
		Urgency:    &storedUrgency,
	}

	highIntent := true
	stage := domain.StageGenuineLead
	patchUrgency := domain.UrgencyOneWeek
	req := transport.UpdateLeadRequest{
		HighIntent: &highIntent,
		Stage:      &stage,
		Urgency:    transport.OptionalUrgency{Value: &patchUrgency, Set: true},
	}

	view := effectiveScoringView(stored, req)

	if !view.HighIntent || view.Stage != domain.StageGenuineLead {
		t.Errorf("patch values should win, got %+v", view)
	}
	if view.Urgency == nil || *view.Urgency != domain.UrgencyOneWeek {
		t.Errorf("patch urgency should win, got %v", view.Urgency)
	}
}

func TestEffectiveScoringView_ExplicitNullUrgency(t *testing.T) {
	storedUrgency := domain.UrgencyOneWeek
	stored := repository.Lead{Stage: domain.StageRawLead, Urgency: &storedUrgency}

	req := transport.UpdateLeadRequest{
		Urgency: transport.OptionalUrgency{Value: nil, Set: true},
	}

	view := effectiveScoringView(stored, req)
	if view.Urgency != nil {
		t.Errorf("explicit null should clear urgency, got %v", view.Urgency)
	}
}
