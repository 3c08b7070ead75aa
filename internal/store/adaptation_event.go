package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAdaptation(ctx context.Context, data AdaptationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AdaptationEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetAdapted(data.Adapted).
		SetOldDifficulty(data.OldDifficulty).
		SetNewDifficulty(data.NewDifficulty).
		SetAdjustment(data.Adjustment).
		SetTrigger(data.Trigger).
		SetReason(data.Reason).
		SetConfidence(data.Confidence).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save adaptation event: %w", err)
	}
	return nil
}
