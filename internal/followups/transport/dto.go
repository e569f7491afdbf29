package transport

import "time"

// Request DTOs
type ScheduleFollowUpRequest struct {
	LeadID      int64     `json:"leadId" validate:"required,min=1"`
	AgentID     int64     `json:"agentId" validate:"required,min=1"`
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
}

type ListFollowUpsRequest struct {
	LeadID    *int64 `form:"leadId" validate:"omitempty,min=1"`
	AgentID   *int64 `form:"agentId" validate:"omitempty,min=1"`
	Completed *bool  `form:"completed"`
	Limit     int    `form:"limit" validate:"omitempty,min=1,max=200"`
	Offset    int    `form:"offset" validate:"omitempty,min=0"`
}

// Response DTOs
type FollowUpResponse struct {
	ID          int64      `json:"id"`
	LeadID      int64      `json:"leadId"`
	AgentID     int64      `json:"agentId"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	ScheduledAt time.Time  `json:"scheduledAt"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type FollowUpListResponse struct {
	Items  []FollowUpResponse `json:"items"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}
