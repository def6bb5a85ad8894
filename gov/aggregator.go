package gov

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/hexgov/crossveto/bridge"
	"github.com/hexgov/crossveto/power"
)

// Clock supplies the domain time. Operations read it once at entry; there
// is no intra-operation time progression because every operation is
// serialized and atomic on its domain's ledger.
type Clock interface {
	Now() uint64
}

// SystemClock reads the local wall clock as unix seconds.
type SystemClock struct{}

func (SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}

// Aggregator is the cross-domain proposal/veto state machine. It owns the
// proposal and vote-marker storage exclusively, holds a narrow transport
// capability for the outbound tally, and queries the voting-power oracle
// at each proposal's snapshot instant.
//
// Replay protection for inbound messages is the transport's job (the
// router validates source and nonce before dispatching), so the aggregator
// performs no replay check of its own.
type Aggregator struct {
	rules     Rules
	store     *Store
	oracle    power.Oracle
	transport bridge.Transport
	self      common.Address
	clock     Clock
	log       *logrus.Entry
}

// New assembles an aggregator. self is this aggregator's own address on
// the remote domain, used when registering the trusted path.
func New(rules Rules, store *Store, oracle power.Oracle, transport bridge.Transport, self common.Address, clock Clock) *Aggregator {
	return &Aggregator{
		rules:     rules,
		store:     store,
		oracle:    oracle,
		transport: transport,
		self:      self,
		clock:     clock,
		log:       logrus.WithField("module", "gov"),
	}
}

var _ bridge.Handler = (*Aggregator)(nil)

// Configure installs the trust binding and registers the packed
// (counterpart, self) path with the transport. A binding can be set once;
// every later attempt fails with ErrAlreadyConfigured and changes nothing.
func (a *Aggregator) Configure(b Binding) error {
	existing, err := a.store.GetBinding()
	if err != nil {
		return err
	}
	if existing != nil && existing.Domain != 0 {
		return ErrAlreadyConfigured
	}
	if err := a.transport.SetTrustedPath(b.Domain, bridge.PackPath(b.Counterpart, a.self)); err != nil {
		return err
	}
	if err := a.store.SetBinding(&b); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"domain":      b.Domain,
		"counterpart": b.Counterpart.Hex(),
		"bridge":      b.Bridge.Hex(),
	}).Info("endpoint binding configured")
	return nil
}

// HandleMessage is the transport dispatch target. The payload must be a
// proposal-creation tuple; a decode failure consumes the message (the
// transport logs the drop, nothing is retried here).
func (a *Aggregator) HandleMessage(src bridge.Endpoint, nonce uint64, payload []byte) error {
	id, startDate, endDate, err := DecodeProposalMsg(payload)
	if err != nil {
		return fmt.Errorf("proposal message from domain %d: %w", src.Domain, err)
	}
	return a.ReceiveProposal(id, startDate, endDate)
}

// ReceiveProposal unconditionally writes a fresh record at id, overwriting
// any prior record — including a finalized one, which re-arms the
// exactly-once bridging for the new incarnation.
//
// Vote markers from a previous incarnation are NOT cleared: accounts that
// vetoed before the overwrite stay blocked even though the tally restarts
// at zero. This asymmetry is inherited from the source system and kept
// until stakeholders decide otherwise.
func (a *Aggregator) ReceiveProposal(id ProposalID, startDate *big.Int, endDate uint64) error {
	p := &Proposal{
		StartDate: new(big.Int).Set(startDate),
		EndDate:   endDate,
		Vetoes:    new(big.Int),
	}
	if err := a.store.SetProposal(id, p); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"proposal": id.Hex(),
		"start":    startDate.String(),
		"end":      endDate,
	}).Info("proposal received")
	return nil
}

// Veto records voter's veto on id, weighted by the voter's balance at the
// proposal's start date. Preconditions, in order: the voting window must
// still be open (a never-created id ends at instant 0 and is rejected the
// same way), and the voter must not have vetoed this id before. Each
// successful call strictly increases the tally — deliberately not
// idempotent, which is why the duplicate check exists.
func (a *Aggregator) Veto(voter common.Address, id ProposalID) error {
	now := a.clock.Now()

	p, err := a.store.GetProposal(id)
	if err != nil {
		return err
	}
	if p == nil {
		p = emptyProposal()
	}
	if p.EndDate < now {
		return ErrProposalEnded
	}
	voted, err := a.store.HasVote(id, voter)
	if err != nil {
		return err
	}
	if voted {
		return ErrAlreadyVetoed
	}

	// All preconditions passed; read the snapshot weight before the first
	// write so a failed oracle query leaves no partial state.
	weight, err := a.oracle.PastWeight(voter, p.StartDate)
	if err != nil {
		return fmt.Errorf("voting-power query for %s: %w", voter.Hex(), err)
	}
	if err := a.store.AddVote(id, voter); err != nil {
		return err
	}
	p.Vetoes.Add(p.Vetoes, weight)
	if err := a.store.SetProposal(id, p); err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"proposal": id.Hex(),
		"voter":    voter.Hex(),
		"weight":   weight.String(),
		"tally":    p.Vetoes.String(),
	}).Info("veto recorded")
	return nil
}

// BridgeResults sends the aggregated tally for id to the configured
// counterpart, exactly once per incarnation of the id. fee is the caller's
// budget for the outbound transport; the unused balance is credited to
// refund. The record is marked finalized only after the transport accepts
// the payload, so a rejected send (say, an insufficient fee) leaves the
// proposal bridgeable.
//
// Unless Rules.RequireEndedResults is set, a proposal may be bridged while
// its voting window is still open — preserved source behavior.
func (a *Aggregator) BridgeResults(id ProposalID, refund common.Address, fee *big.Int) error {
	p, err := a.store.GetProposal(id)
	if err != nil {
		return err
	}
	if p == nil {
		p = emptyProposal()
	}
	if p.Finalized {
		return ErrAlreadyFinalized
	}
	if a.rules.RequireEndedResults && a.clock.Now() <= p.EndDate {
		return ErrVotingActive
	}
	b, err := a.store.GetBinding()
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNotConfigured
	}

	payload := EncodeResultMsg(id, p.Vetoes)
	if err := a.transport.Send(b.Domain, payload, refund, fee); err != nil {
		return err
	}
	p.Finalized = true
	if err := a.store.SetProposal(id, p); err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"proposal": id.Hex(),
		"tally":    p.Vetoes.String(),
		"domain":   b.Domain,
	}).Info("results bridged")
	return nil
}

// Proposal returns the full record for id. Never-created ids read as the
// zero record (zero dates, zero tally, not finalized).
func (a *Aggregator) Proposal(id ProposalID) (Proposal, error) {
	p, err := a.store.GetProposal(id)
	if err != nil {
		return Proposal{}, err
	}
	if p == nil {
		p = emptyProposal()
	}
	return Proposal{
		StartDate: new(big.Int).Set(p.StartDate),
		EndDate:   p.EndDate,
		Vetoes:    new(big.Int).Set(p.Vetoes),
		Finalized: p.Finalized,
	}, nil
}

// ProposalStatus derives the lifecycle state of id at the current domain
// time.
func (a *Aggregator) ProposalStatus(id ProposalID) (Status, error) {
	p, err := a.Proposal(id)
	if err != nil {
		return StatusActive, err
	}
	return p.Status(a.clock.Now()), nil
}

// HasVetoed reports whether voter already vetoed id.
func (a *Aggregator) HasVetoed(id ProposalID, voter common.Address) (bool, error) {
	return a.store.HasVote(id, voter)
}

// Binding returns the configured trust binding, or nil before Configure.
func (a *Aggregator) Binding() (*Binding, error) {
	return a.store.GetBinding()
}

// Oracle exposes the configured voting-power source.
func (a *Aggregator) Oracle() power.Oracle {
	return a.oracle
}

// Rules exposes the governance parameters this aggregator runs under.
func (a *Aggregator) Rules() Rules {
	return a.rules
}
