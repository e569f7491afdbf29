// Package notification reacts to domain events with outbound side effects.
// Everything here is fire-and-forget: failures are logged, never surfaced
// to the operation that raised the event.
package notification

import (
	"context"

	"varniya_crm_backend/internal/events"
	"varniya_crm_backend/internal/wati"
	"varniya_crm_backend/platform/logger"
)

// highScoreThreshold marks lead creations worth flagging in the log.
const highScoreThreshold = 70

const welcomeMessage = "Thank you for reaching out to Varniya! One of our jewelry consultants will get back to you shortly."

type Module struct {
	wati *wati.Client
	log  *logger.Logger
}

// NewModule wires the notification handlers onto the event bus.
func NewModule(bus events.Bus, watiClient *wati.Client, log *logger.Logger) *Module {
	m := &Module{wati: watiClient, log: log}

	bus.Subscribe(events.WatiMessageReceived{}.EventName(), events.HandlerFunc(m.onWatiMessage))
	bus.Subscribe(events.LeadCreated{}.EventName(), events.HandlerFunc(m.onLeadCreated))

	return m
}

// onWatiMessage acknowledges brand-new webhook leads over WATI. Existing
// leads already have a conversation going and get no auto-reply.
func (m *Module) onWatiMessage(ctx context.Context, event events.Event) error {
	e, ok := event.(events.WatiMessageReceived)
	if !ok || !e.IsNewLead {
		return nil
	}

	if err := m.wati.SendMessage(ctx, e.Phone, welcomeMessage); err != nil {
		m.log.Error("wati acknowledgment failed", "error", err, "leadId", e.LeadID)
	}

	return nil
}

func (m *Module) onLeadCreated(ctx context.Context, event events.Event) error {
	e, ok := event.(events.LeadCreated)
	if !ok {
		return nil
	}

	if e.LeadScore >= highScoreThreshold {
		m.log.Info("high score lead created",
			"leadId", e.LeadID, "score", e.LeadScore, "source", e.Source, "medium", e.Medium)
	}

	return nil
}
