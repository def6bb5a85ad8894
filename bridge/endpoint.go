// Package bridge defines the narrow transport capability the veto
// aggregator holds, plus an in-process Router implementing it for local
// runtimes and tests.
//
// The production counterpart of the Router is an external message bridge:
// it assigns every inbound message a strictly increasing per-source nonce,
// applies each nonce at most once and in order, and validates the source
// (domain, address) pair against a registered trusted path before
// dispatching. Outbound sends are fire-and-forget against a caller-supplied
// fee budget, with the unused balance returned to a refund address.
package bridge

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// PathLength is the size of a packed trusted path: two raw 20-byte
// addresses concatenated, no length prefix.
const PathLength = 2 * common.AddressLength

var (
	// ErrUnknownDomain is returned when sending to a domain with no
	// registered endpoint.
	ErrUnknownDomain = errors.New("bridge: unknown destination domain")

	// ErrInsufficientFee is returned when the supplied fee budget does not
	// cover the base delivery fee.
	ErrInsufficientFee = errors.New("bridge: fee budget below base fee")

	// ErrDomainTaken is returned when registering a second endpoint on a
	// domain that already has one.
	ErrDomainTaken = errors.New("bridge: domain already has an endpoint")

	// ErrBadPath is returned for a trusted path of the wrong length.
	ErrBadPath = errors.New("bridge: malformed trusted path")
)

// Endpoint identifies one side of a cross-domain channel: the numeric
// domain id and the aggregator's address on that domain.
type Endpoint struct {
	Domain  uint32
	Address common.Address
}

// Transport is the outbound capability held by a message-processing
// component. It is deliberately narrow: the component can address the
// counterpart and register who it trusts, nothing else.
type Transport interface {
	// Send delivers payload to the endpoint registered on dstDomain.
	// fee is the caller's budget for delivery; whatever the transport does
	// not consume is credited back to refund. Send reports only local
	// failures (bad fee, unknown domain) — remote-side rejections are not
	// surfaced to the sender.
	Send(dstDomain uint32, payload []byte, refund common.Address, fee *big.Int) error

	// SetTrustedPath registers the packed path (counterpart || self) for
	// remoteDomain. Inbound messages claiming to come from remoteDomain are
	// accepted only if their source address matches the path's counterpart.
	SetTrustedPath(remoteDomain uint32, path []byte) error
}

// Handler consumes verified inbound messages. The transport calls it only
// after trust validation and nonce ordering have passed, so implementations
// need no replay protection of their own. A returned error drops the
// message permanently; retry policy, if any, lives in the transport.
type Handler interface {
	HandleMessage(src Endpoint, nonce uint64, payload []byte) error
}

// PackPath packs (counterpart, self) into the raw 40-byte trusted-path
// form expected by SetTrustedPath.
func PackPath(counterpart common.Address, self common.Address) []byte {
	path := make([]byte, 0, PathLength)
	path = append(path, counterpart.Bytes()...)
	path = append(path, self.Bytes()...)
	return path
}

// UnpackPath splits a packed trusted path back into (counterpart, self).
func UnpackPath(path []byte) (counterpart common.Address, self common.Address, err error) {
	if len(path) != PathLength {
		return common.Address{}, common.Address{}, ErrBadPath
	}
	copy(counterpart[:], path[:common.AddressLength])
	copy(self[:], path[common.AddressLength:])
	return counterpart, self, nil
}
