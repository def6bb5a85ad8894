// Package power provides historical voting-weight lookups for the veto
// aggregator. Vote weight is always read as of a proposal's snapshot
// instant, never as of "now", so that balance movements after a proposal
// is created cannot inflate or launder votes.
package power

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Oracle answers historical voting-weight queries.
//
// PastWeight must return the weight the account held at the given instant,
// regardless of when the query is made. Implementations therefore need to be
// queryable against arbitrary past snapshots; returning only the current
// state is a correctness bug, not an approximation.
type Oracle interface {
	// PastWeight returns the account's voting weight at instant `at`
	// (a ledger timestamp). Accounts with no recorded weight have weight 0.
	PastWeight(account common.Address, at *big.Int) (*big.Int, error)
}
