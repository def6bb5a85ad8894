// Package gov implements the remote-domain half of a cross-domain
// governance decision: proposals created on the home domain are relayed
// in, token-weighted holders veto them here, and the aggregated tally is
// relayed back exactly once per proposal.
//
// Key concepts:
//   - Proposal: one relayed governance question, identified by a 256-bit id
//   - Veto: a weighted negative vote, weight snapshotted at the proposal's
//     start date so later balance moves cannot change a vote's weight
//   - Binding: the single trusted (domain, address) counterpart pair,
//     configured once and never rewritten
//
// The package tolerates asynchronous at-least-once cross-domain delivery:
// replay protection is the transport's job (per-source nonces), while the
// aggregator guarantees one vote per account per proposal and exactly one
// outbound tally message per proposal id.
package gov

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ProposalID is the caller-chosen 256-bit proposal identifier.
type ProposalID = common.Hash

// Status is the explicit lifecycle state of a proposal record.
type Status uint8

const (
	// StatusActive means the voting window is open: vetoes accumulate.
	StatusActive Status = iota

	// StatusEnded means domain time has passed the end date: vetoes are
	// rejected, but the tally has not been bridged yet.
	StatusEnded

	// StatusFinalized means the tally message has been sent. Terminal for
	// this incarnation of the id; only a re-creation message resets it.
	StatusFinalized
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusEnded:
		return "ended"
	case StatusFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Proposal is the per-id aggregation record.
//
// Vetoes only ever increases for the lifetime of a given incarnation, and
// Finalized transitions false -> true exactly once. A re-creation message
// overwrites the whole record (see Aggregator.ReceiveProposal).
type Proposal struct {
	// StartDate is the voting-power snapshot instant: every veto on this
	// proposal is weighted by the voter's balance at this point in time.
	StartDate *big.Int

	// EndDate is the last instant (inclusive) at which vetoes are accepted.
	EndDate uint64

	// Vetoes is the running sum of voting power from all valid vetoes.
	Vetoes *big.Int

	// Finalized is set when the tally has been handed to the transport.
	Finalized bool
}

// emptyProposal returns the zero record read for ids that were never
// created. Its EndDate of 0 makes every veto attempt fail as ended.
func emptyProposal() *Proposal {
	return &Proposal{
		StartDate: new(big.Int),
		Vetoes:    new(big.Int),
	}
}

// Status derives the lifecycle state from the record and the domain time.
func (p *Proposal) Status(now uint64) Status {
	switch {
	case p.Finalized:
		return StatusFinalized
	case now > p.EndDate:
		return StatusEnded
	default:
		return StatusActive
	}
}

// Binding is the set-once trust configuration: which remote domain and
// which counterpart address this aggregator talks to, and through which
// local bridge endpoint.
type Binding struct {
	// Domain is the remote domain id. Zero means "not configured", which is
	// why a configured binding can never carry domain 0.
	Domain uint32

	// Bridge is the local transport endpoint the aggregator sends through.
	Bridge common.Address

	// Counterpart is the only address on Domain whose messages are accepted
	// and the destination of the outbound tally message.
	Counterpart common.Address
}
