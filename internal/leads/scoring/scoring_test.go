package scoring

import (
	"testing"

	"varniya_crm_backend/internal/leads/domain"
)

func TestCreateScore_ExhaustiveEnumGrid(t *testing.T) {
	sourceWeights := map[domain.Source]int{
		domain.SourceGoogle:        20,
		domain.SourceMeta:          20,
		domain.SourceSEO:           15,
		domain.SourceOrganic:       15,
		domain.SourceReferral:      25,
		domain.SourceDirectUnknown: 5,
	}
	requestWeights := map[domain.RequestType]int{
		domain.RequestTypeProductEnquiry:        30,
		domain.RequestTypeRequestForInformation: 20,
		domain.RequestTypeSuggestions:           10,
		domain.RequestTypeOther:                 5,
	}

	for source, sourceWeight := range sourceWeights {
		for requestType, requestWeight := range requestWeights {
			for _, highIntent := range []bool{true, false} {
				intentWeight := 10
				if highIntent {
					intentWeight = 50
				}
				want := intentWeight + sourceWeight + requestWeight

				got := CreateScore(highIntent, source, requestType)
				if got != want {
					t.Errorf("CreateScore(%v, %s, %s) = %d, want %d", highIntent, source, requestType, got, want)
				}
				if got < 20 || got > 100 {
					t.Errorf("CreateScore(%v, %s, %s) = %d, outside [20,100]", highIntent, source, requestType, got)
				}
			}
		}
	}
}

func TestCreateScore_KnownCombination(t *testing.T) {
	// high intent referral asking for information: 50 + 25 + 20
	got := CreateScore(true, domain.SourceReferral, domain.RequestTypeRequestForInformation)
	if got != 95 {
		t.Fatalf("expected 95, got %d", got)
	}
}

func TestUpdateScore_UsesDifferentWeightsThanCreate(t *testing.T) {
	urgency := domain.UrgencyOneWeek
	got := UpdateScore(UpdateInputs{
		HighIntent: true,
		Stage:      domain.StageGenuineLead,
		Urgency:    &urgency,
	})
	// 30 (intent) + 40 (genuine_lead) + 20 (1_week)
	if got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}
}

func TestUpdateScore_StageWeights(t *testing.T) {
	cases := []struct {
		stage domain.Stage
		want  int
	}{
		{domain.StageGenuineLead, 40},
		{domain.StageInContact, 20},
		{domain.StageRawLead, 10},
		{domain.StageNotInterested, 0},
		{domain.StageNoResponse, 0},
		{domain.StageJunk, 0},
	}

	for _, tc := range cases {
		got := UpdateScore(UpdateInputs{HighIntent: false, Stage: tc.stage})
		if got != tc.want {
			t.Errorf("UpdateScore(stage=%s) = %d, want %d", tc.stage, got, tc.want)
		}
	}
}

func TestUpdateScore_UrgencyWeights(t *testing.T) {
	cases := []struct {
		urgency domain.Urgency
		want    int
	}{
		{domain.UrgencyOneWeek, 20},
		{domain.UrgencyTwoWeeks, 15},
		{domain.UrgencyThreeWeeks, 10},
		{domain.UrgencyOneMonth, 5},
		{domain.UrgencyThreeMonths, 2},
		{domain.UrgencyNone, 0},
	}

	for _, tc := range cases {
		urgency := tc.urgency
		got := UpdateScore(UpdateInputs{Stage: domain.StageJunk, Urgency: &urgency})
		if got != tc.want {
			t.Errorf("UpdateScore(urgency=%s) = %d, want %d", tc.urgency, got, tc.want)
		}
	}
}

func TestUpdateScore_NilUrgencyContributesZero(t *testing.T) {
	got := UpdateScore(UpdateInputs{HighIntent: true, Stage: domain.StageRawLead, Urgency: nil})
	if got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
}

func TestTriggersRescore(t *testing.T) {
	if TriggersRescore(false, false, false) {
		t.Fatal("no scoring field set should not trigger a rescore")
	}
	if !TriggersRescore(true, false, false) || !TriggersRescore(false, true, false) || !TriggersRescore(false, false, true) {
		t.Fatal("any of high_intent, stage, urgency should trigger a rescore")
	}
}

func TestBrowserIntentScore(t *testing.T) {
	cases := []struct {
		name         string
		pagesVisited int
		actions      []string
		want         int
	}{
		{"no activity", 0, nil, 0},
		{"pages only", 5, nil, 10},
		{"cart add dominates", 2, []string{"cart_add"}, 34},
		{"mixed actions", 3, []string{"product_view", "search", "category_browse"}, 22},
		{"unknown action scores one", 1, []string{"newsletter_signup"}, 3},
		{"capped at 100", 40, []string{"cart_add", "cart_add"}, 100},
	}

	for _, tc := range cases {
		got := BrowserIntentScore(tc.pagesVisited, tc.actions)
		if got != tc.want {
			t.Errorf("%s: BrowserIntentScore(%d, %v) = %d, want %d", tc.name, tc.pagesVisited, tc.actions, got, tc.want)
		}
	}
}

func TestConversionScore(t *testing.T) {
	if got := ConversionScore(0); got != 25 {
		t.Fatalf("expected base 25 for zero intent, got %d", got)
	}
	if got := ConversionScore(80); got != 100 {
		t.Fatalf("expected cap at 100, got %d", got)
	}
	if got := ConversionScore(50); got != 75 {
		t.Fatalf("expected 75, got %d", got)
	}
}
