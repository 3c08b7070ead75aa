package store

import (
	"context"
	"fmt"

	"github.com/mpetrov/caliber/ent"
	"github.com/mpetrov/caliber/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetItemID(data.ItemID).
		SetScore(data.Score).
		SetBinaryScore(data.BinaryScore).
		SetTimeTakenMs(data.TimeTakenMs).
		SetHintsUsed(data.HintsUsed).
		SetAbility(data.Ability).
		SetRating(data.Rating).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, userID string, lastN int) ([]AttemptEventData, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(lastN).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]AttemptEventData, len(events))
	for i, ev := range events {
		out[i] = AttemptEventData{
			UserID:      ev.UserID,
			ItemID:      ev.ItemID,
			Score:       ev.Score,
			BinaryScore: ev.BinaryScore,
			TimeTakenMs: ev.TimeTakenMs,
			HintsUsed:   ev.HintsUsed,
			Ability:     ev.Ability,
			Rating:      ev.Rating,
		}
	}
	return out, nil
}

func (r *eventRepo) AttemptCount(ctx context.Context) (int, error) {
	n, err := r.client.AttemptEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}
