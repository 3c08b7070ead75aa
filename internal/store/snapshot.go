package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mpetrov/caliber/ent"
	"github.com/mpetrov/caliber/ent/statesnapshot"
	"github.com/mpetrov/caliber/internal/engine"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	log    *zap.Logger
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	dataMap, err := snapshotDataToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	_, err = r.client.StateSnapshot.Create().
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.StateSnapshot.Query().
		Order(ent.Desc(statesnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	snap, err := entSnapshotToSnapshot(s)
	if err != nil {
		// Corrupt state is recovered, not propagated: the engine
		// starts empty.
		r.log.Warn("discarding corrupt snapshot",
			zap.Int("id", s.ID),
			zap.Int64("sequence", s.Sequence),
			zap.Error(err))
		return nil, nil
	}
	return snap, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot.
	snapshots, err := r.client.StateSnapshot.Query().
		Order(ent.Desc(statesnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.StateSnapshot.Delete().
		Where(statesnapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// snapshotDataToMap converts the engine snapshot to map[string]any for
// ent JSON storage.
func snapshotDataToMap(data *engine.Snapshot) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entSnapshotToSnapshot converts an ent StateSnapshot to a store
// Snapshot, validating the stored document before unmarshalling.
func entSnapshotToSnapshot(s *ent.StateSnapshot) (*Snapshot, error) {
	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	if err := validateSnapshotJSON(b); err != nil {
		return nil, fmt.Errorf("validate snapshot data: %w", err)
	}
	var data engine.Snapshot
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      &data,
	}, nil
}
