package domain

// preSaleStages are the stages a lead may not regress to once its sale is
// completed. Only genuine_lead remains reachable after sale_completed.
var preSaleStages = map[Stage]bool{
	StageRawLead:       true,
	StageInContact:     true,
	StageNotInterested: true,
	StageNoResponse:    true,
	StageJunk:          true,
}

// IsPreSaleStage reports whether stage precedes a completed sale.
func IsPreSaleStage(stage Stage) bool {
	return preSaleStages[stage]
}

// CanTransitionStage validates a proposed stage change against the lead's
// persisted follow-up status. The only restricted move is regressing a
// completed sale to a pre-sale stage; every other stage change is allowed,
// including backwards moves.
func CanTransitionStage(followUpStatus *FollowUpStatus, proposed Stage) bool {
	if followUpStatus == nil || *followUpStatus != FollowUpStatusSaleCompleted {
		return true
	}
	return !IsPreSaleStage(proposed)
}
