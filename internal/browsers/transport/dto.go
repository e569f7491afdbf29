package transport

import (
	"time"

	"varniya_crm_backend/internal/leads/domain"
)

// Request DTOs
type IngestBrowserRequest struct {
	SessionID    string   `json:"sessionId" validate:"required,min=1,max=200"`
	UserAgent    *string  `json:"userAgent,omitempty" validate:"omitempty,max=500"`
	IPAddress    *string  `json:"ipAddress,omitempty" validate:"omitempty,max=50"`
	PagesVisited int      `json:"pagesVisited" validate:"min=0"`
	TimeSpent    int      `json:"timeSpent" validate:"min=0"`
	Actions      []string `json:"actions" validate:"dive,min=1,max=100"`
}

// ConvertBrowserRequest carries the lead data for a browser-to-lead
// conversion. high_intent and lead_score are not accepted here: conversion
// forces high_intent true and computes its own score. Stage defaults to
// raw_lead when omitted.
type ConvertBrowserRequest struct {
	Name            *string            `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone           *string            `json:"phone,omitempty" validate:"omitempty,min=5,max=20"`
	Email           *string            `json:"email,omitempty" validate:"omitempty,email"`
	Stage           *domain.Stage      `json:"stage,omitempty" validate:"omitempty,oneof=raw_lead in_contact not_interested no_response junk genuine_lead"`
	Medium          domain.Medium      `json:"medium" validate:"required,oneof=wati phone email website social_media other"`
	Source          domain.Source      `json:"source" validate:"required,oneof=google meta seo organic direct_unknown referral"`
	RequestType     domain.RequestType `json:"requestType" validate:"required,oneof=product_enquiry request_for_information suggestions other"`
	Urgency         *domain.Urgency    `json:"urgency,omitempty" validate:"omitempty,oneof=1_week 2_weeks 3_weeks 1_month 3_months no_urgency"`
	SpecialDate     *string            `json:"specialDate,omitempty" validate:"omitempty,max=100"`
	Occasion        *string            `json:"occasion,omitempty" validate:"omitempty,max=200"`
	AssignedAgentID *int64             `json:"assignedAgentId,omitempty"`
}

type ListBrowsersRequest struct {
	Converted *bool `form:"converted"`
	MinScore  *int  `form:"minScore" validate:"omitempty,min=0,max=100"`
	Limit     int   `form:"limit" validate:"omitempty,min=1,max=200"`
	Offset    int   `form:"offset" validate:"omitempty,min=0"`
}

// Response DTOs
type BrowserResponse struct {
	ID              int64     `json:"id"`
	SessionID       string    `json:"sessionId"`
	UserAgent       *string   `json:"userAgent,omitempty"`
	IPAddress       *string   `json:"ipAddress,omitempty"`
	PagesVisited    int       `json:"pagesVisited"`
	TimeSpent       int       `json:"timeSpent"`
	Actions         []string  `json:"actions"`
	HighIntentScore int       `json:"highIntentScore"`
	ConvertedToLead bool      `json:"convertedToLead"`
	LeadID          *int64    `json:"leadId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	LastActivity    time.Time `json:"lastActivity"`
}

type BrowserListResponse struct {
	Items  []BrowserResponse `json:"items"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
