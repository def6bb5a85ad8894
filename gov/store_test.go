package gov

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	storeID    = common.HexToHash("0x11")
	storeVoter = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

func TestStoreProposalRoundTrip(t *testing.T) {
	require := require.New(t)
	s := NewMemStore()

	missing, err := s.GetProposal(storeID)
	require.NoError(err)
	require.Nil(missing)

	in := &Proposal{
		StartDate: big.NewInt(100),
		EndDate:   200,
		Vetoes:    big.NewInt(50),
		Finalized: true,
	}
	require.NoError(s.SetProposal(storeID, in))

	out, err := s.GetProposal(storeID)
	require.NoError(err)
	require.Zero(out.StartDate.Cmp(in.StartDate))
	require.Equal(in.EndDate, out.EndDate)
	require.Zero(out.Vetoes.Cmp(in.Vetoes))
	require.True(out.Finalized)
}

func TestStoreOverwriteReplacesRecord(t *testing.T) {
	require := require.New(t)
	s := NewMemStore()

	require.NoError(s.SetProposal(storeID, &Proposal{
		StartDate: big.NewInt(1), EndDate: 2, Vetoes: big.NewInt(3), Finalized: true,
	}))
	require.NoError(s.SetProposal(storeID, &Proposal{
		StartDate: big.NewInt(10), EndDate: 20, Vetoes: new(big.Int),
	}))

	out, err := s.GetProposal(storeID)
	require.NoError(err)
	require.Equal(int64(10), out.StartDate.Int64())
	require.Equal(uint64(20), out.EndDate)
	require.Zero(out.Vetoes.Sign())
	require.False(out.Finalized)
}

func TestStoreVoteMarkers(t *testing.T) {
	require := require.New(t)
	s := NewMemStore()

	has, err := s.HasVote(storeID, storeVoter)
	require.NoError(err)
	require.False(has)

	require.NoError(s.AddVote(storeID, storeVoter))

	has, err = s.HasVote(storeID, storeVoter)
	require.NoError(err)
	require.True(has)

	// Markers are keyed by (proposal, account): neither a different id nor
	// a different voter is affected.
	otherID := common.HexToHash("0x12")
	has, err = s.HasVote(otherID, storeVoter)
	require.NoError(err)
	require.False(has)

	other := common.HexToAddress("0x00000000000000000000000000000000000000dd")
	has, err = s.HasVote(storeID, other)
	require.NoError(err)
	require.False(has)
}

func TestStoreBindingRoundTrip(t *testing.T) {
	require := require.New(t)
	s := NewMemStore()

	missing, err := s.GetBinding()
	require.NoError(err)
	require.Nil(missing)

	in := &Binding{
		Domain:      4001,
		Bridge:      common.HexToAddress("0x00000000000000000000000000000000000000e1"),
		Counterpart: common.HexToAddress("0x00000000000000000000000000000000000000e2"),
	}
	require.NoError(s.SetBinding(in))

	out, err := s.GetBinding()
	require.NoError(err)
	require.Equal(in, out)
}
