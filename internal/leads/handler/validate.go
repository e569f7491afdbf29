package handler

import (
	"varniya_crm_backend/internal/leads/domain"
	"varniya_crm_backend/internal/leads/transport"
)

// validUpdateEnums covers the tri-state optional fields, which opt out of
// struct tag validation because "null" is a legal value for them.
func validUpdateEnums(req transport.UpdateLeadRequest) bool {
	if req.Status.Set && req.Status.Value != nil && !domain.IsKnownStatus(*req.Status.Value) {
		return false
	}
	if req.FollowUpStatus.Set && req.FollowUpStatus.Value != nil && !domain.IsKnownFollowUpStatus(*req.FollowUpStatus.Value) {
		return false
	}
	if req.Urgency.Set && req.Urgency.Value != nil && !domain.IsKnownUrgency(*req.Urgency.Value) {
		return false
	}
	return true
}
