package gov

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/hexgov/crossveto/utils/fast"
)

// codec.go implements the two fixed-width wire tuples exchanged with the
// home domain. The layout is dictated by the counterpart contract, so both
// sides are plain big-endian words with no framing:
//
//	proposal creation (inbound):  proposalId(32) || startDate(32) || endDate(8)
//	aggregated result (outbound): proposalId(32) || vetoes(32)
//
// Length is validated up front; after that the fast.Reader cursor cannot
// over-read.

const (
	wordLength = common.HashLength

	// ProposalMsgLength is the exact size of an inbound creation payload.
	ProposalMsgLength = 2*wordLength + 8

	// ResultMsgLength is the exact size of an outbound tally payload.
	ResultMsgLength = 2 * wordLength
)

// EncodeProposalMsg packs a proposal-creation tuple. startDate is encoded
// as an unsigned 256-bit word (truncated mod 2^256 like the source format).
func EncodeProposalMsg(id ProposalID, startDate *big.Int, endDate uint64) []byte {
	w := fast.NewWriter(make([]byte, 0, ProposalMsgLength))
	w.Write(id.Bytes())
	w.Write(math.U256Bytes(new(big.Int).Set(startDate)))

	var end [8]byte
	binary.BigEndian.PutUint64(end[:], endDate)
	w.Write(end[:])
	return w.Bytes()
}

// DecodeProposalMsg unpacks a proposal-creation tuple. Any payload that is
// not exactly ProposalMsgLength bytes fails with ErrBadPayload.
func DecodeProposalMsg(raw []byte) (id ProposalID, startDate *big.Int, endDate uint64, err error) {
	if len(raw) != ProposalMsgLength {
		err = ErrBadPayload
		return
	}
	r := fast.NewReader(raw)
	id = common.BytesToHash(r.Read(wordLength))
	startDate = new(big.Int).SetBytes(r.Read(wordLength))
	endDate = binary.BigEndian.Uint64(r.Read(8))
	return
}

// EncodeResultMsg packs an aggregated-result tuple.
func EncodeResultMsg(id ProposalID, vetoes *big.Int) []byte {
	w := fast.NewWriter(make([]byte, 0, ResultMsgLength))
	w.Write(id.Bytes())
	w.Write(math.U256Bytes(new(big.Int).Set(vetoes)))
	return w.Bytes()
}

// DecodeResultMsg unpacks an aggregated-result tuple.
func DecodeResultMsg(raw []byte) (id ProposalID, vetoes *big.Int, err error) {
	if len(raw) != ResultMsgLength {
		err = ErrBadPayload
		return
	}
	r := fast.NewReader(raw)
	id = common.BytesToHash(r.Read(wordLength))
	vetoes = new(big.Int).SetBytes(r.Read(wordLength))
	return
}
