package registry

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	alfa  = common.HexToAddress("0x0000000000000000000000000000000000000a1f")
	bravo = common.HexToAddress("0x0000000000000000000000000000000000000b7a")
)

func TestRegisterAndRead(t *testing.T) {
	require := require.New(t)
	r := NewMem()

	missing, err := r.ContentOf(alfa)
	require.NoError(err)
	require.Nil(missing)

	require.NoError(r.Register(alfa, []byte("ipfs://key-one")))

	got, err := r.ContentOf(alfa)
	require.NoError(err)
	require.Equal([]byte("ipfs://key-one"), got)
}

func TestRegisterRejectsEmptyContent(t *testing.T) {
	r := NewMem()
	require.Equal(t, ErrEmptyContent, r.Register(alfa, nil))
	require.Equal(t, ErrEmptyContent, r.Register(alfa, []byte{}))

	n, err := r.Len()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestDiscoveryListOrderAndUniqueness(t *testing.T) {
	require := require.New(t)
	r := NewMem()

	require.NoError(r.Register(bravo, []byte("b1")))
	require.NoError(r.Register(alfa, []byte("a1")))

	// Re-registration replaces the record but never re-lists the account.
	require.NoError(r.Register(bravo, []byte("b2")))

	accounts, err := r.Accounts()
	require.NoError(err)
	require.Equal([]common.Address{bravo, alfa}, accounts)

	got, err := r.ContentOf(bravo)
	require.NoError(err)
	require.Equal([]byte("b2"), got)

	n, err := r.Len()
	require.NoError(err)
	require.Equal(uint64(2), n)
}

func TestRegisterKeepsCallerBufferIsolated(t *testing.T) {
	require := require.New(t)
	r := NewMem()

	buf := []byte("mutable")
	require.NoError(r.Register(alfa, buf))
	buf[0] = 'X'

	got, err := r.ContentOf(alfa)
	require.NoError(err)
	require.Equal([]byte("mutable"), got)
}
