package integration

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hexgov/crossveto/bridge"
	"github.com/hexgov/crossveto/gov"
	"github.com/hexgov/crossveto/power"
)

// AdjustableClock is the ledger clock of a loopback pair. Tests and the
// fakenet runtime move it explicitly; real deployments use gov.SystemClock.
type AdjustableClock struct {
	mu  sync.Mutex
	now uint64
}

func NewAdjustableClock(now uint64) *AdjustableClock {
	return &AdjustableClock{now: now}
}

func (c *AdjustableClock) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to the given instant.
func (c *AdjustableClock) Set(now uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// TallyCollector is the home-domain message handler: it decodes bridged
// result tuples and keeps the latest tally per proposal id.
type TallyCollector struct {
	mu      sync.Mutex
	tallies map[gov.ProposalID]*big.Int
}

func NewTallyCollector() *TallyCollector {
	return &TallyCollector{tallies: make(map[gov.ProposalID]*big.Int)}
}

var _ bridge.Handler = (*TallyCollector)(nil)

func (c *TallyCollector) HandleMessage(src bridge.Endpoint, nonce uint64, payload []byte) error {
	id, vetoes, err := gov.DecodeResultMsg(payload)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tallies[id] = vetoes
	return nil
}

// Tally returns the last bridged tally for id, if any arrived.
func (c *TallyCollector) Tally(id gov.ProposalID) (*big.Int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.tallies[id]
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(t), true
}

// Len returns how many distinct proposals have bridged tallies.
func (c *TallyCollector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tallies)
}

// Loopback is a complete two-domain governance pair in one process: a home
// endpoint that creates proposals and collects tallies, and a remote
// aggregator that accepts vetoes, joined by an in-process bridge router.
type Loopback struct {
	Rules   *gov.Rules
	Router  *bridge.Router
	Remote  *gov.Aggregator
	Ledger  *power.SnapshotLedger
	Clock   *AdjustableClock
	Tallies *TallyCollector

	homePort *bridge.Port

	// HomeAddr and RemoteAddr are the endpoint addresses on either domain.
	HomeAddr   common.Address
	RemoteAddr common.Address
}

// NewLoopback assembles and configures a loopback pair under the given
// rules. baseFee is charged per bridged message (nil means free).
func NewLoopback(rules gov.Rules, baseFee *big.Int, homeAddr, remoteAddr common.Address) (*Loopback, error) {
	router := bridge.NewRouter(baseFee)
	clock := NewAdjustableClock(1)
	ledger := power.NewSnapshotLedger()
	tallies := NewTallyCollector()

	homePort, err := router.Register(bridge.Endpoint{Domain: rules.HomeDomainID, Address: homeAddr}, tallies)
	if err != nil {
		return nil, err
	}
	if err := homePort.SetTrustedPath(rules.RemoteDomainID, bridge.PackPath(remoteAddr, homeAddr)); err != nil {
		return nil, err
	}

	remotePort, err := router.Register(bridge.Endpoint{Domain: rules.RemoteDomainID, Address: remoteAddr}, nil)
	if err != nil {
		return nil, err
	}
	agg := gov.New(rules, gov.NewMemStore(), ledger, remotePort, remoteAddr, clock)
	remotePort.Bind(agg)

	if err := agg.Configure(gov.Binding{
		Domain:      rules.HomeDomainID,
		Bridge:      remoteAddr, // the in-process router has no separate endpoint contract
		Counterpart: homeAddr,
	}); err != nil {
		return nil, err
	}

	return &Loopback{
		Rules:      &rules,
		Router:     router,
		Remote:     agg,
		Ledger:     ledger,
		Clock:      clock,
		Tallies:    tallies,
		homePort:   homePort,
		HomeAddr:   homeAddr,
		RemoteAddr: remoteAddr,
	}, nil
}

// CreateProposal emits a proposal-creation message from the home domain.
func (l *Loopback) CreateProposal(id gov.ProposalID, startDate *big.Int, endDate uint64, refund common.Address, fee *big.Int) error {
	payload := gov.EncodeProposalMsg(id, startDate, endDate)
	return l.homePort.Send(l.Rules.RemoteDomainID, payload, refund, fee)
}

// SendRaw emits an arbitrary payload from the home domain, for exercising
// the decode-failure path.
func (l *Loopback) SendRaw(payload []byte, refund common.Address, fee *big.Int) error {
	return l.homePort.Send(l.Rules.RemoteDomainID, payload, refund, fee)
}
