// Package domain provides core business rules for the leads bounded context.
package domain

// Stage is the lead's position in the sales funnel.
type Stage string

const (
	StageRawLead       Stage = "raw_lead"
	StageInContact     Stage = "in_contact"
	StageNotInterested Stage = "not_interested"
	StageNoResponse    Stage = "no_response"
	StageJunk          Stage = "junk"
	StageGenuineLead   Stage = "genuine_lead"
)

// Status is an optional substage used only within genuine_lead.
type Status string

const (
	StatusFirstCallDone   Status = "first_call_done"
	StatusEstimatesShared Status = "estimates_shared"
	StatusDisqualified    Status = "disqualified"
)

// FollowUpStatus is the sale-progress axis, independent from Stage.
type FollowUpStatus string

const (
	FollowUpStatusFollowUp      FollowUpStatus = "follow_up"
	FollowUpStatusGoneCold      FollowUpStatus = "gone_cold"
	FollowUpStatusSaleCompleted FollowUpStatus = "sale_completed"
)

// Medium is the contact channel a lead arrived through.
type Medium string

const (
	MediumWati        Medium = "wati"
	MediumPhone       Medium = "phone"
	MediumEmail       Medium = "email"
	MediumWebsite     Medium = "website"
	MediumSocialMedia Medium = "social_media"
	MediumOther       Medium = "other"
)

// Source is the traffic origin of the lead.
type Source string

const (
	SourceGoogle        Source = "google"
	SourceMeta          Source = "meta"
	SourceSEO           Source = "seo"
	SourceOrganic       Source = "organic"
	SourceDirectUnknown Source = "direct_unknown"
	SourceReferral      Source = "referral"
)

// RequestType describes the nature of the enquiry.
type RequestType string

const (
	RequestTypeProductEnquiry        RequestType = "product_enquiry"
	RequestTypeRequestForInformation RequestType = "request_for_information"
	RequestTypeSuggestions           RequestType = "suggestions"
	RequestTypeOther                 RequestType = "other"
)

// Urgency is the time-to-purchase pressure on a lead.
type Urgency string

const (
	UrgencyOneWeek     Urgency = "1_week"
	UrgencyTwoWeeks    Urgency = "2_weeks"
	UrgencyThreeWeeks  Urgency = "3_weeks"
	UrgencyOneMonth    Urgency = "1_month"
	UrgencyThreeMonths Urgency = "3_months"
	UrgencyNone        Urgency = "no_urgency"
)

var knownStages = map[Stage]struct{}{
	StageRawLead:       {},
	StageInContact:     {},
	StageNotInterested: {},
	StageNoResponse:    {},
	StageJunk:          {},
	StageGenuineLead:   {},
}

// IsKnownStage reports whether stage is one of the defined funnel stages.
func IsKnownStage(stage Stage) bool {
	_, ok := knownStages[stage]
	return ok
}

var knownStatuses = map[Status]struct{}{
	StatusFirstCallDone:   {},
	StatusEstimatesShared: {},
	StatusDisqualified:    {},
}

func IsKnownStatus(status Status) bool {
	_, ok := knownStatuses[status]
	return ok
}

var knownFollowUpStatuses = map[FollowUpStatus]struct{}{
	FollowUpStatusFollowUp:      {},
	FollowUpStatusGoneCold:      {},
	FollowUpStatusSaleCompleted: {},
}

func IsKnownFollowUpStatus(status FollowUpStatus) bool {
	_, ok := knownFollowUpStatuses[status]
	return ok
}

var knownUrgencies = map[Urgency]struct{}{
	UrgencyOneWeek:     {},
	UrgencyTwoWeeks:    {},
	UrgencyThreeWeeks:  {},
	UrgencyOneMonth:    {},
	UrgencyThreeMonths: {},
	UrgencyNone:        {},
}

func IsKnownUrgency(urgency Urgency) bool {
	_, ok := knownUrgencies[urgency]
	return ok
}
