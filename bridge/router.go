package bridge

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
)

// Router is an in-process transport connecting the endpoints of several
// domains. It reproduces the delivery guarantees the aggregator relies on:
// per-source strictly increasing nonces, at-most-once in-order application,
// and trusted-path validation before dispatch. Delivery is synchronous —
// mutating operations on a domain are serialized by its ledger, so there is
// no intra-domain parallelism to model.
type Router struct {
	log     *logrus.Entry
	baseFee *big.Int

	mu      sync.Mutex
	ports   map[uint32]*Port
	refunds map[common.Address]*big.Int
}

// NewRouter creates a Router charging baseFee per delivered message.
// A nil baseFee means delivery is free.
func NewRouter(baseFee *big.Int) *Router {
	if baseFee == nil {
		baseFee = new(big.Int)
	}
	return &Router{
		log:     logrus.WithField("module", "bridge"),
		baseFee: new(big.Int).Set(baseFee),
		ports:   make(map[uint32]*Port),
		refunds: make(map[common.Address]*big.Int),
	}
}

// Refunded returns the total fee balance credited back to addr so far.
func (r *Router) Refunded(addr common.Address) *big.Int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.refunds[addr]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

func (r *Router) credit(addr common.Address, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	b, ok := r.refunds[addr]
	if !ok {
		b = new(big.Int)
		r.refunds[addr] = b
	}
	b.Add(b, amount)
}

// Register attaches handler as the single endpoint of self.Domain and
// returns the Port the handler's component uses for outbound sends.
// handler may be nil when the component needs the Port first (it holds the
// Transport capability at construction time); attach it with Bind before
// any message can arrive, since an unbound port rejects everything.
func (r *Router) Register(self Endpoint, handler Handler) (*Port, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ports[self.Domain]; ok {
		return nil, ErrDomainTaken
	}
	p := &Port{
		router:   r,
		self:     self,
		handler:  handler,
		trusted:  make(map[uint32][]byte),
		inbound:  make(map[uint32]uint64),
		outbound: make(map[uint32]uint64),
	}
	r.ports[self.Domain] = p
	r.log.WithFields(logrus.Fields{
		"domain":  self.Domain,
		"address": self.Address.Hex(),
	}).Info("endpoint registered")
	return p, nil
}

// Port is one domain's attachment to the Router. It implements Transport
// for the component registered on it.
type Port struct {
	router  *Router
	self    Endpoint
	handler Handler

	trusted  map[uint32][]byte // remote domain -> packed (counterpart || self)
	inbound  map[uint32]uint64 // remote domain -> last applied nonce
	outbound map[uint32]uint64 // destination domain -> last assigned nonce

	delivered uint64
	rejected  uint64
}

var _ Transport = (*Port)(nil)

// Bind attaches the inbound message handler.
func (p *Port) Bind(handler Handler) {
	p.router.mu.Lock()
	defer p.router.mu.Unlock()
	p.handler = handler
}

// SetTrustedPath registers the packed path for remoteDomain. The set-once
// policy on the binding itself belongs to the component; the transport only
// records what it is told to trust.
func (p *Port) SetTrustedPath(remoteDomain uint32, path []byte) error {
	if len(path) != PathLength {
		return ErrBadPath
	}
	p.router.mu.Lock()
	defer p.router.mu.Unlock()

	cp := make([]byte, PathLength)
	copy(cp, path)
	p.trusted[remoteDomain] = cp
	return nil
}

// Send charges the base fee from the supplied budget, credits the unused
// balance to refund, assigns the next per-channel nonce and dispatches the
// payload to the destination endpoint. Remote-side rejections (untrusted
// source, handler failure) consume the message silently from the sender's
// point of view.
func (p *Port) Send(dstDomain uint32, payload []byte, refund common.Address, fee *big.Int) error {
	r := p.router
	r.mu.Lock()

	if fee == nil {
		fee = new(big.Int)
	}
	if fee.Cmp(r.baseFee) < 0 {
		r.mu.Unlock()
		return ErrInsufficientFee
	}
	dst, ok := r.ports[dstDomain]
	if !ok {
		r.mu.Unlock()
		return ErrUnknownDomain
	}
	r.credit(refund, new(big.Int).Sub(fee, r.baseFee))

	p.outbound[dstDomain]++
	nonce := p.outbound[dstDomain]
	r.mu.Unlock()

	dst.deliver(p.self, nonce, payload)
	return nil
}

// deliver applies one inbound message. The nonce is consumed even when the
// handler fails: at-most-once means a faulty message is dropped, not
// replayed.
func (p *Port) deliver(src Endpoint, nonce uint64, payload []byte) {
	log := p.router.log.WithFields(logrus.Fields{
		"src":   src.Domain,
		"dst":   p.self.Domain,
		"nonce": nonce,
	})

	p.router.mu.Lock()
	handler := p.handler
	if handler == nil {
		p.rejected++
		p.router.mu.Unlock()
		log.Warn("message for unbound endpoint rejected")
		return
	}
	path, ok := p.trusted[src.Domain]
	if !ok {
		p.rejected++
		p.router.mu.Unlock()
		log.Warn("message from untrusted domain rejected")
		return
	}
	counterpart, self, err := UnpackPath(path)
	if err != nil || counterpart != src.Address || self != p.self.Address {
		p.rejected++
		p.router.mu.Unlock()
		log.WithField("source", src.Address.Hex()).Warn("message source does not match trusted path")
		return
	}
	if nonce != p.inbound[src.Domain]+1 {
		expected := p.inbound[src.Domain] + 1
		p.rejected++
		p.router.mu.Unlock()
		log.WithField("expected", expected).Warn("out-of-order nonce rejected")
		return
	}
	p.inbound[src.Domain] = nonce
	p.router.mu.Unlock()

	// Handler runs outside the router lock so it may itself send.
	if err := handler.HandleMessage(src, nonce, payload); err != nil {
		p.router.mu.Lock()
		p.rejected++
		p.router.mu.Unlock()
		log.WithError(err).Warn("message dropped by handler")
		return
	}
	p.router.mu.Lock()
	p.delivered++
	p.router.mu.Unlock()
}

// Delivered returns how many inbound messages this port has applied.
func (p *Port) Delivered() uint64 {
	p.router.mu.Lock()
	defer p.router.mu.Unlock()
	return p.delivered
}

// Rejected returns how many inbound messages this port has refused
// (untrusted source, bad nonce or handler failure).
func (p *Port) Rejected() uint64 {
	p.router.mu.Lock()
	defer p.router.mu.Unlock()
	return p.rejected
}
