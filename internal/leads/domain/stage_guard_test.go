package domain

import "testing"

func TestCanTransitionStage_SaleCompletedBlocksPreSaleStages(t *testing.T) {
	completed := FollowUpStatusSaleCompleted

	blocked := []Stage{StageRawLead, StageInContact, StageNotInterested, StageNoResponse, StageJunk}
	for _, stage := range blocked {
		if CanTransitionStage(&completed, stage) {
			t.Errorf("expected transition to %s to be blocked after sale_completed", stage)
		}
	}

	if !CanTransitionStage(&completed, StageGenuineLead) {
		t.Error("genuine_lead must remain reachable after sale_completed")
	}
}

func TestCanTransitionStage_UnrestrictedOtherwise(t *testing.T) {
	followUp := FollowUpStatusFollowUp
	goneCold := FollowUpStatusGoneCold

	for _, status := range []*FollowUpStatus{nil, &followUp, &goneCold} {
		for stage := range knownStages {
			if !CanTransitionStage(status, stage) {
				t.Errorf("transition to %s with follow-up status %v should be allowed", stage, status)
			}
		}
	}
}

func TestIsKnownStage(t *testing.T) {
	if !IsKnownStage(StageGenuineLead) {
		t.Fatal("genuine_lead should be known")
	}
	if IsKnownStage(Stage("diamond_hands")) {
		t.Fatal("unknown stage should not be known")
	}
}
