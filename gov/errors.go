package gov

import "errors"

// Every precondition violation aborts the whole operation with one of
// these sentinels and no partial state mutation. None of them is retried
// internally; the caller observes the failure and decides.
var (
	// ErrAlreadyConfigured rejects a second trust-binding configuration.
	ErrAlreadyConfigured = errors.New("gov: endpoint binding already configured")

	// ErrNotConfigured rejects outbound operations before a binding exists.
	ErrNotConfigured = errors.New("gov: endpoint binding not configured")

	// ErrProposalEnded rejects a veto after the end date, or against an id
	// that was never created (its zero record ends at instant 0).
	ErrProposalEnded = errors.New("gov: proposal voting has ended")

	// ErrAlreadyVetoed rejects a second veto by the same account.
	ErrAlreadyVetoed = errors.New("gov: account already vetoed this proposal")

	// ErrAlreadyFinalized rejects bridging results twice for the same id.
	ErrAlreadyFinalized = errors.New("gov: results already bridged")

	// ErrVotingActive rejects bridging results while the voting window is
	// still open. Only raised when Rules.RequireEndedResults is enabled.
	ErrVotingActive = errors.New("gov: proposal voting still active")

	// ErrBadPayload rejects an inbound message that does not decode to the
	// fixed wire layout. The message is consumed, never retried here.
	ErrBadPayload = errors.New("gov: malformed message payload")
)
