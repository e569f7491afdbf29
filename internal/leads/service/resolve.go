package service

import (
	"varniya_crm_backend/internal/leads/repository"
	"varniya_crm_backend/internal/leads/scoring"
	"varniya_crm_backend/internal/leads/transport"
)

// effectiveScoringView merges the stored lead with the update payload into
// one fully-resolved view for the update-time score formula: a field set in
// the patch wins, everything else falls back to the stored value. Built as a
// single merge step so the formula and the guard run over plain values.
func effectiveScoringView(stored repository.Lead, req transport.UpdateLeadRequest) scoring.UpdateInputs {
	view := scoring.UpdateInputs{
		HighIntent: stored.HighIntent,
		Stage:      stored.Stage,
		Urgency:    stored.Urgency,
	}

	if req.HighIntent != nil {
		view.HighIntent = *req.HighIntent
	}
	if req.Stage != nil {
		view.Stage = *req.Stage
	}
	if req.Urgency.Set {
		view.Urgency = req.Urgency.Value
	}

	return view
}
