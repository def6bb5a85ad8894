package gov

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestProposalMsgRoundTrip(t *testing.T) {
	require := require.New(t)

	id := common.HexToHash("0xdeadbeef")
	start := big.NewInt(100)
	raw := EncodeProposalMsg(id, start, 200)
	require.Len(raw, ProposalMsgLength)

	gotID, gotStart, gotEnd, err := DecodeProposalMsg(raw)
	require.NoError(err)
	require.Equal(id, gotID)
	require.Zero(gotStart.Cmp(start))
	require.Equal(uint64(200), gotEnd)
}

func TestProposalMsgLayout(t *testing.T) {
	require := require.New(t)

	id := common.HexToHash("0x01")
	raw := EncodeProposalMsg(id, big.NewInt(0x0102), 0x0304)

	// proposalId occupies the first word.
	require.True(bytes.Equal(id.Bytes(), raw[:32]))
	// startDate is a left-padded big-endian word.
	require.Equal(byte(0x01), raw[62])
	require.Equal(byte(0x02), raw[63])
	require.True(bytes.Equal(make([]byte, 30), raw[32:62]))
	// endDate is a trailing big-endian uint64.
	require.True(bytes.Equal([]byte{0, 0, 0, 0, 0, 0, 0x03, 0x04}, raw[64:]))
}

func TestProposalMsgExtremes(t *testing.T) {
	require := require.New(t)

	maxWord := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	raw := EncodeProposalMsg(common.Hash{}, maxWord, ^uint64(0))

	_, gotStart, gotEnd, err := DecodeProposalMsg(raw)
	require.NoError(err)
	require.Zero(gotStart.Cmp(maxWord))
	require.Equal(^uint64(0), gotEnd)

	// Values beyond 2^256 wrap, matching the source word arithmetic.
	over := new(big.Int).Add(maxWord, big.NewInt(3))
	raw = EncodeProposalMsg(common.Hash{}, over, 0)
	_, gotStart, _, err = DecodeProposalMsg(raw)
	require.NoError(err)
	require.Equal(int64(2), gotStart.Int64())
}

func TestDecodeProposalMsgRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, 1, ProposalMsgLength - 1, ProposalMsgLength + 1, 2 * ProposalMsgLength} {
		_, _, _, err := DecodeProposalMsg(make([]byte, n))
		require.Equal(t, ErrBadPayload, err, "length %d", n)
	}
}

func TestResultMsgRoundTrip(t *testing.T) {
	require := require.New(t)

	id := common.HexToHash("0x02")
	tally := new(big.Int).Lsh(big.NewInt(7), 128)
	raw := EncodeResultMsg(id, tally)
	require.Len(raw, ResultMsgLength)

	gotID, gotTally, err := DecodeResultMsg(raw)
	require.NoError(err)
	require.Equal(id, gotID)
	require.Zero(gotTally.Cmp(tally))
}

func TestDecodeResultMsgRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, ResultMsgLength - 1, ResultMsgLength + 1, ProposalMsgLength} {
		_, _, err := DecodeResultMsg(make([]byte, n))
		require.Equal(t, ErrBadPayload, err, "length %d", n)
	}
}

func TestEncodeDoesNotMutateArguments(t *testing.T) {
	require := require.New(t)

	start := new(big.Int).Lsh(big.NewInt(9), 300) // wider than a word
	keep := new(big.Int).Set(start)
	EncodeProposalMsg(common.Hash{}, start, 0)
	require.Zero(start.Cmp(keep))
}
