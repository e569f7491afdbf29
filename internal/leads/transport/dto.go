package transport

import (
	"time"

	"varniya_crm_backend/internal/leads/domain"
)

// Request DTOs
type CreateLeadRequest struct {
	Name            *string            `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone           *string            `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Email           *string            `json:"email,omitempty" validate:"omitempty,email"`
	Stage           *domain.Stage      `json:"stage,omitempty" validate:"omitempty,oneof=raw_lead in_contact not_interested no_response junk genuine_lead"`
	Medium          domain.Medium      `json:"medium" validate:"required,oneof=wati phone email website social_media other"`
	Source          domain.Source      `json:"source" validate:"required,oneof=google meta seo organic direct_unknown referral"`
	HighIntent      bool               `json:"highIntent"`
	RequestType     domain.RequestType `json:"requestType" validate:"required,oneof=product_enquiry request_for_information suggestions other"`
	Urgency         *domain.Urgency    `json:"urgency,omitempty" validate:"omitempty,oneof=1_week 2_weeks 3_weeks 1_month 3_months no_urgency"`
	SpecialDate     *string            `json:"specialDate,omitempty" validate:"omitempty,max=100"`
	Occasion        *string            `json:"occasion,omitempty" validate:"omitempty,max=200"`
	AssignedAgentID *int64             `json:"assignedAgentId,omitempty"`
}

type UpdateLeadRequest struct {
	Name            OptionalString         `json:"name,omitempty" validate:"-"`
	Phone           OptionalString         `json:"phone,omitempty" validate:"-"`
	Email           OptionalString         `json:"email,omitempty" validate:"-"`
	Stage           *domain.Stage          `json:"stage,omitempty" validate:"omitempty,oneof=raw_lead in_contact not_interested no_response junk genuine_lead"`
	Status          OptionalStatus         `json:"status,omitempty" validate:"-"`
	FollowUpStatus  OptionalFollowUpStatus `json:"followUpStatus,omitempty" validate:"-"`
	Medium          *domain.Medium         `json:"medium,omitempty" validate:"omitempty,oneof=wati phone email website social_media other"`
	Source          *domain.Source         `json:"source,omitempty" validate:"omitempty,oneof=google meta seo organic direct_unknown referral"`
	HighIntent      *bool                  `json:"highIntent,omitempty"`
	RequestType     *domain.RequestType    `json:"requestType,omitempty" validate:"omitempty,oneof=product_enquiry request_for_information suggestions other"`
	Urgency         OptionalUrgency        `json:"urgency,omitempty" validate:"-"`
	SpecialDate     OptionalString         `json:"specialDate,omitempty" validate:"-"`
	Occasion        OptionalString         `json:"occasion,omitempty" validate:"-"`
	AssignedAgentID OptionalInt64          `json:"assignedAgentId,omitempty" validate:"-"`
	LeadScore       *int                   `json:"leadScore,omitempty" validate:"omitempty,min=0,max=100"`
}

type AddNoteRequest struct {
	AgentID int64  `json:"agentId" validate:"required,min=1"`
	Note    string `json:"note" validate:"required,min=1,max=2000"`
}

type ListLeadsRequest struct {
	Stage           *domain.Stage          `form:"stage" validate:"omitempty,oneof=raw_lead in_contact not_interested no_response junk genuine_lead"`
	Status          *domain.Status         `form:"status" validate:"omitempty,oneof=first_call_done estimates_shared disqualified"`
	FollowUpStatus  *domain.FollowUpStatus `form:"followUpStatus" validate:"omitempty,oneof=follow_up gone_cold sale_completed"`
	Source          *domain.Source         `form:"source" validate:"omitempty,oneof=google meta seo organic direct_unknown referral"`
	AssignedAgentID *int64                 `form:"assignedAgentId" validate:"omitempty,min=1"`
	HighIntent      *bool                  `form:"highIntent"`
	Limit           int                    `form:"limit" validate:"omitempty,min=1,max=200"`
	Offset          int                    `form:"offset" validate:"omitempty,min=0"`
}

// Response DTOs
type LeadResponse struct {
	ID              int64                  `json:"id"`
	Name            *string                `json:"name,omitempty"`
	Phone           *string                `json:"phone,omitempty"`
	Email           *string                `json:"email,omitempty"`
	Stage           domain.Stage           `json:"stage"`
	Status          *domain.Status         `json:"status,omitempty"`
	FollowUpStatus  *domain.FollowUpStatus `json:"followUpStatus,omitempty"`
	Medium          domain.Medium          `json:"medium"`
	Source          domain.Source          `json:"source"`
	HighIntent      bool                   `json:"highIntent"`
	RequestType     domain.RequestType     `json:"requestType"`
	Urgency         *domain.Urgency        `json:"urgency,omitempty"`
	SpecialDate     *string                `json:"specialDate,omitempty"`
	Occasion        *string                `json:"occasion,omitempty"`
	AssignedAgentID *int64                 `json:"assignedAgentId,omitempty"`
	LeadScore       int                    `json:"leadScore"`
	LastContactAt   *time.Time             `json:"lastContactAt,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

type LeadListResponse struct {
	Items  []LeadResponse `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type NoteResponse struct {
	ID        int64     `json:"id"`
	LeadID    int64     `json:"leadId"`
	AgentID   int64     `json:"agentId"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}
