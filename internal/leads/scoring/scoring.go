// Package scoring implements the lead quality and browser intent score
// policies as pure functions over immutable weight tables.
//
// The create-time and update-time lead formulas use different weight tables
// on purpose: the update path scores the lead's current funnel position
// (stage, urgency) while the create path scores its acquisition profile
// (source, request type). Do not unify them.
package scoring

import (
	"varniya_crm_backend/internal/leads/domain"
)

const (
	// MaxScore caps every score produced by this package.
	MaxScore = 100

	// WatiLeadScore is the flat score assigned to leads created from an
	// inbound WATI message.
	WatiLeadScore = 20

	// conversionBase is the floor added to a browser's intent score when
	// it converts into a lead.
	conversionBase = 25

	createHighIntentScore = 50
	createLowIntentScore  = 10

	updateHighIntentScore = 30
)

var createSourceScores = map[domain.Source]int{
	domain.SourceGoogle:        20,
	domain.SourceMeta:          20,
	domain.SourceSEO:           15,
	domain.SourceOrganic:       15,
	domain.SourceReferral:      25,
	domain.SourceDirectUnknown: 5,
}

var createRequestTypeScores = map[domain.RequestType]int{
	domain.RequestTypeProductEnquiry:        30,
	domain.RequestTypeRequestForInformation: 20,
	domain.RequestTypeSuggestions:           10,
	domain.RequestTypeOther:                 5,
}

var updateStageScores = map[domain.Stage]int{
	domain.StageGenuineLead:   40,
	domain.StageInContact:     20,
	domain.StageRawLead:       10,
	domain.StageNotInterested: 0,
	domain.StageNoResponse:    0,
	domain.StageJunk:          0,
}

var updateUrgencyScores = map[domain.Urgency]int{
	domain.UrgencyOneWeek:     20,
	domain.UrgencyTwoWeeks:    15,
	domain.UrgencyThreeWeeks:  10,
	domain.UrgencyOneMonth:    5,
	domain.UrgencyThreeMonths: 2,
	domain.UrgencyNone:        0,
}

var browserActionScores = map[string]int{
	"cart_add":        30,
	"product_view":    5,
	"category_browse": 3,
	"search":          8,
}

// browserDefaultActionScore applies to any action tag without an explicit weight.
const browserDefaultActionScore = 1

// CreateScore computes the lead score at creation from the acquisition
// profile of the input. Range is [20,100] across the defined enums.
func CreateScore(highIntent bool, source domain.Source, requestType domain.RequestType) int {
	score := createLowIntentScore
	if highIntent {
		score = createHighIntentScore
	}
	score += createSourceScores[source]
	score += createRequestTypeScores[requestType]
	return score
}

// UpdateInputs is the fully-resolved view of the fields the update formula
// reads: payload values where present, stored values otherwise.
type UpdateInputs struct {
	HighIntent bool
	Stage      domain.Stage
	Urgency    *domain.Urgency
}

// UpdateScore recomputes the lead score from scratch from the effective
// funnel position. A nil urgency contributes zero, same as no_urgency.
func UpdateScore(in UpdateInputs) int {
	score := 0
	if in.HighIntent {
		score += updateHighIntentScore
	}
	score += updateStageScores[in.Stage]
	if in.Urgency != nil {
		score += updateUrgencyScores[*in.Urgency]
	}
	return score
}

// TriggersRescore reports whether an update payload touching the given
// fields requires the score to be recomputed. Only high_intent, stage and
// urgency participate; other fields never trigger a rescore even when they
// feed the create formula.
func TriggersRescore(highIntentSet, stageSet, urgencySet bool) bool {
	return highIntentSet || stageSet || urgencySet
}

// BrowserIntentScore computes the 0-100 purchase intent estimate for a
// browser session from its telemetry. Computed once at ingestion, never
// recomputed afterwards.
func BrowserIntentScore(pagesVisited int, actions []string) int {
	score := pagesVisited * 2
	for _, action := range actions {
		if weight, ok := browserActionScores[action]; ok {
			score += weight
		} else {
			score += browserDefaultActionScore
		}
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// ConversionScore computes the lead score for a browser-to-lead conversion.
// The conversion path has its own rule and bypasses CreateScore entirely.
func ConversionScore(browserIntentScore int) int {
	score := conversionBase + browserIntentScore
	if score > MaxScore {
		return MaxScore
	}
	return score
}
