package store

import (
	"context"
	"time"

	"github.com/mpetrov/caliber/internal/engine"
)

// Snapshot is a point-in-time capture of the engine state.
type Snapshot struct {
	ID        int
	Sequence  int64 // total attempts processed when the snapshot was taken
	Timestamp time.Time
	Data      *engine.Snapshot
}

// SnapshotRepo manages engine state snapshots.
//
// Latest returning (nil, nil) is the documented not-found outcome: a
// missing or corrupt snapshot is recovered by starting from empty
// state, never by failing.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent valid snapshot, or nil if none
	// exists. A stored document that fails schema validation is
	// logged and skipped as corrupt.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures one processed attempt for the audit log.
// Ability and Rating hold the post-update values.
type AttemptEventData struct {
	UserID      string
	ItemID      string
	Score       float64
	BinaryScore int
	TimeTakenMs int64
	HintsUsed   int
	Ability     float64
	Rating      float64
}

// AdaptationEventData captures one difficulty-controller cycle.
type AdaptationEventData struct {
	UserID        string
	Adapted       bool
	OldDifficulty float64
	NewDifficulty float64
	Adjustment    float64
	Trigger       string
	Reason        string
	Confidence    float64
}

// EventRepo provides append access to the domain event log.
type EventRepo interface {
	// AppendAttempt records a processed attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendAdaptation records a difficulty adaptation cycle.
	AppendAdaptation(ctx context.Context, data AdaptationEventData) error

	// RecentAttempts returns the user's last N attempt events, most
	// recent first.
	RecentAttempts(ctx context.Context, userID string, lastN int) ([]AttemptEventData, error)

	// AttemptCount reports the total number of logged attempts.
	AttemptCount(ctx context.Context) (int, error)
}
