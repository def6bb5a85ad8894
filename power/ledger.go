package power

import (
	"errors"
	"math/big"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// ErrStaleCheckpoint is returned when a checkpoint is appended at or before
// an account's latest recorded instant. Checkpoints form an append-only,
// strictly increasing timeline per account.
var ErrStaleCheckpoint = errors.New("power: checkpoint is not newer than the latest one")

// checkpoint is one (instant, weight) sample of an account's voting weight.
type checkpoint struct {
	at     *big.Int
	weight *big.Int
}

// SnapshotLedger is a checkpointed Oracle implementation. Every weight
// change is recorded as a new checkpoint, and PastWeight binary-searches
// the account's timeline for the last checkpoint at or before the queried
// instant. This is what makes arbitrary-past queries exact rather than
// approximated from current state.
type SnapshotLedger struct {
	mu          sync.RWMutex
	checkpoints map[common.Address][]checkpoint
}

func NewSnapshotLedger() *SnapshotLedger {
	return &SnapshotLedger{
		checkpoints: make(map[common.Address][]checkpoint),
	}
}

// Checkpoint records the account's weight as of instant `at`. The instant
// must be strictly greater than the account's latest checkpoint.
func (l *SnapshotLedger) Checkpoint(account common.Address, at *big.Int, weight *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	history := l.checkpoints[account]
	if len(history) > 0 && history[len(history)-1].at.Cmp(at) >= 0 {
		return ErrStaleCheckpoint
	}
	l.checkpoints[account] = append(history, checkpoint{
		at:     new(big.Int).Set(at),
		weight: new(big.Int).Set(weight),
	})
	return nil
}

// PastWeight returns the account's weight at instant `at`: the weight of the
// last checkpoint not later than `at`, or 0 if the account had no weight yet.
func (l *SnapshotLedger) PastWeight(account common.Address, at *big.Int) (*big.Int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	history := l.checkpoints[account]
	// Index of the first checkpoint strictly after `at`.
	i := sort.Search(len(history), func(i int) bool {
		return history[i].at.Cmp(at) > 0
	})
	if i == 0 {
		return new(big.Int), nil
	}
	return new(big.Int).Set(history[i-1].weight), nil
}

var _ Oracle = (*SnapshotLedger)(nil)
