package service

import (
	"context"
	"testing"

	"varniya_crm_backend/internal/browsers/repository"
	"varniya_crm_backend/internal/browsers/transport"
	"varniya_crm_backend/internal/events"
	"varniya_crm_backend/internal/leads/domain"
	leadsrepo "varniya_crm_backend/internal/leads/repository"
	"varniya_crm_backend/platform/apperr"
	"varniya_crm_backend/platform/logger"
)

type testStore struct {
	browser   repository.Browser
	getErr    error
	createErr error

	convertLead    leadsrepo.Lead
	convertBrowser repository.Browser
	convertErr     error
	convertedWith  *leadsrepo.CreateLeadParams
}

func (s *testStore) Create(_ context.Context, params repository.CreateBrowserParams) (repository.Browser, error) {
	if s.createErr != nil {
		return repository.Browser{}, s.createErr
	}
	return repository.Browser{
		ID:              1,
		SessionID:       params.SessionID,
		PagesVisited:    params.PagesVisited,
		TimeSpent:       params.TimeSpent,
		Actions:         params.Actions,
		HighIntentScore: params.HighIntentScore,
	}, nil
}

func (s *testStore) GetByID(context.Context, int64) (repository.Browser, error) {
	return s.browser, s.getErr
}

func (s *testStore) Convert(_ context.Context, _ int64, lead leadsrepo.CreateLeadParams) (leadsrepo.Lead, repository.Browser, error) {
	s.convertedWith = &lead
	if s.convertErr != nil {
		return leadsrepo.Lead{}, repository.Browser{}, s.convertErr
	}
	return s.convertLead, s.convertBrowser, nil
}

func (s *testStore) List(context.Context, repository.ListParams) ([]repository.Browser, int, error) {
	return nil, 0, nil
}

type testBus struct {
	published []events.Event
}

func (b *testBus) Publish(_ context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *testBus) PublishSync(context.Context, events.Event) error { return nil }

func (b *testBus) Subscribe(string, events.Handler) {}

func newTestService(store *testStore, bus *testBus) *Service {
	return New(store, bus, logger.New("development"))
}

func TestIngestDuplicateSessionReturnsConflict(t *testing.T) {
	store := &testStore{createErr: repository.ErrSessionExists}
	svc := newTestService(store, &testBus{})

	_, err := svc.Ingest(context.Background(), transport.IngestBrowserRequest{SessionID: "sess-1"})
	if err == nil {
		t.Fatal("expected error for duplicate session, got nil")
	}
	if kind := apperr.GetKind(err); kind != apperr.KindConflict {
		t.Errorf("kind = %v, want KindConflict", kind)
	}
}

func TestConvertErrorBranches(t *testing.T) {
	tests := []struct {
		name     string
		store    *testStore
		wantKind apperr.Kind
	}{
		{
			name:     "missing session",
			store:    &testStore{getErr: repository.ErrNotFound},
			wantKind: apperr.KindNotFound,
		},
		{
			name:     "already converted",
			store:    &testStore{browser: repository.Browser{ID: 7, ConvertedToLead: true}},
			wantKind: apperr.KindConflict,
		},
		{
			name: "session deleted mid-flight",
			store: &testStore{
				browser:    repository.Browser{ID: 7},
				convertErr: repository.ErrNotFound,
			},
			wantKind: apperr.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := &testBus{}
			svc := newTestService(tt.store, bus)

			_, err := svc.Convert(context.Background(), 7, transport.ConvertBrowserRequest{
				Medium:      domain.MediumWebsite,
				Source:      domain.SourceOrganic,
				RequestType: domain.RequestTypeProductEnquiry,
			})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if kind := apperr.GetKind(err); kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", kind, tt.wantKind)
			}
			if len(bus.published) != 0 {
				t.Errorf("published %d events on a failed conversion, want 0", len(bus.published))
			}
		})
	}
}

func TestConvertForcesHighIntentAndConversionScore(t *testing.T) {
	store := &testStore{
		browser:        repository.Browser{ID: 7, SessionID: "sess-7", HighIntentScore: 80},
		convertLead:    leadsrepo.Lead{ID: 42, Stage: domain.StageRawLead, HighIntent: true, LeadScore: 100},
		convertBrowser: repository.Browser{ID: 7, SessionID: "sess-7", HighIntentScore: 80, ConvertedToLead: true},
	}
	bus := &testBus{}
	svc := newTestService(store, bus)

	resp, err := svc.Convert(context.Background(), 7, transport.ConvertBrowserRequest{
		Medium:      domain.MediumWebsite,
		Source:      domain.SourceOrganic,
		RequestType: domain.RequestTypeProductEnquiry,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	params := store.convertedWith
	if params == nil {
		t.Fatal("repository Convert was never called")
	}
	if !params.HighIntent {
		t.Error("conversion did not force high_intent true")
	}
	if params.LeadScore != 100 {
		t.Errorf("lead score = %d, want 100 (min of cap and 25+80)", params.LeadScore)
	}
	if params.Stage != domain.StageRawLead {
		t.Errorf("stage = %q, want default raw_lead", params.Stage)
	}
	if resp.ID != 42 {
		t.Errorf("response lead id = %d, want 42", resp.ID)
	}
	if len(bus.published) != 2 {
		t.Fatalf("published %d events, want BrowserConverted + LeadCreated", len(bus.published))
	}
	if _, ok := bus.published[0].(events.BrowserConverted); !ok {
		t.Errorf("first event = %T, want BrowserConverted", bus.published[0])
	}
	if _, ok := bus.published[1].(events.LeadCreated); !ok {
		t.Errorf("second event = %T, want LeadCreated", bus.published[1])
	}
}

func TestConvertHonorsRequestedStage(t *testing.T) {
	store := &testStore{
		browser:     repository.Browser{ID: 7, HighIntentScore: 10},
		convertLead: leadsrepo.Lead{ID: 42, Stage: domain.StageGenuineLead},
	}
	svc := newTestService(store, &testBus{})

	stage := domain.StageGenuineLead
	_, err := svc.Convert(context.Background(), 7, transport.ConvertBrowserRequest{
		Stage:       &stage,
		Medium:      domain.MediumWebsite,
		Source:      domain.SourceOrganic,
		RequestType: domain.RequestTypeProductEnquiry,
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if store.convertedWith.Stage != domain.StageGenuineLead {
		t.Errorf("stage = %q, want genuine_lead", store.convertedWith.Stage)
	}
}

func TestGetByIDMissingSession(t *testing.T) {
	svc := newTestService(&testStore{getErr: repository.ErrNotFound}, &testBus{})

	_, err := svc.GetByID(context.Background(), 99)
	if kind := apperr.GetKind(err); kind != apperr.KindNotFound {
		t.Errorf("kind = %v, want KindNotFound", kind)
	}
}
