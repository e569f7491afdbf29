// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"varniya_crm_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCreated is published when a new lead is created, whichever path
// created it (API, browser conversion, WATI webhook).
type LeadCreated struct {
	BaseEvent
	LeadID          int64   `json:"leadId"`
	Phone           *string `json:"phone,omitempty"`
	Name            *string `json:"name,omitempty"`
	Medium          string  `json:"medium"`
	Source          string  `json:"source"`
	LeadScore       int     `json:"leadScore"`
	HighIntent      bool    `json:"highIntent"`
	AssignedAgentID *int64  `json:"assignedAgentId,omitempty"`
}

func (e LeadCreated) EventName() string { return "leads.lead.created" }

// LeadStageChanged is published when an update moves a lead to a new stage.
type LeadStageChanged struct {
	BaseEvent
	LeadID   int64  `json:"leadId"`
	OldStage string `json:"oldStage"`
	NewStage string `json:"newStage"`
}

func (e LeadStageChanged) EventName() string { return "leads.stage.changed" }

// =============================================================================
// Browser Domain Events
// =============================================================================

// BrowserConverted is published when a tracked browser session is converted
// into a lead.
type BrowserConverted struct {
	BaseEvent
	BrowserID       int64  `json:"browserId"`
	SessionID       string `json:"sessionId"`
	LeadID          int64  `json:"leadId"`
	HighIntentScore int    `json:"highIntentScore"`
	LeadScore       int    `json:"leadScore"`
}

func (e BrowserConverted) EventName() string { return "browsers.session.converted" }

// =============================================================================
// Orders Domain Events
// =============================================================================

// OrderCreated is published when an order is recorded against a lead.
type OrderCreated struct {
	BaseEvent
	OrderID     int64   `json:"orderId"`
	LeadID      int64   `json:"leadId"`
	ProductType string  `json:"productType"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

func (e OrderCreated) EventName() string { return "orders.order.created" }

// =============================================================================
// Follow-up Domain Events
// =============================================================================

// FollowUpScheduled is published when a follow-up activity is scheduled.
type FollowUpScheduled struct {
	BaseEvent
	FollowUpID int64 `json:"followUpId"`
	LeadID     int64 `json:"leadId"`
	AgentID    int64 `json:"agentId"`
}

func (e FollowUpScheduled) EventName() string { return "followups.activity.scheduled" }

// =============================================================================
// Webhook Domain Events
// =============================================================================

// WatiMessageReceived is published when an inbound WATI message is processed.
// IsNewLead reports whether the message created a fresh lead or only bumped
// an existing one.
type WatiMessageReceived struct {
	BaseEvent
	LeadID    int64  `json:"leadId"`
	Phone     string `json:"phone"`
	IsNewLead bool   `json:"isNewLead"`
}

func (e WatiMessageReceived) EventName() string { return "webhook.wati.message_received" }
