// Package registry is a flat public-key directory: one opaque content
// record per registrant, plus an append-only discovery list in first-come
// order. It shares the kvdb storage layer of the core but has no
// interesting invariants beyond "one record per registrant, non-empty
// payload".
package registry

import (
	"encoding/binary"
	"errors"

	"github.com/Fantom-foundation/lachesis-base/kvdb"
	"github.com/Fantom-foundation/lachesis-base/kvdb/memorydb"
	"github.com/Fantom-foundation/lachesis-base/kvdb/table"
	"github.com/ethereum/go-ethereum/common"
)

// ErrEmptyContent rejects a registration with no payload.
var ErrEmptyContent = errors.New("registry: empty content")

var countKey = []byte("n")

// Registry stores account -> content records and the discovery list.
type Registry struct {
	db kvdb.Store

	tables struct {
		Content kvdb.Store // account -> opaque content reference
		Index   kvdb.Store // big-endian position -> account
		Meta    kvdb.Store // list length
	}
}

// New wraps the given database with the registry's table layout.
func New(db kvdb.Store) *Registry {
	r := &Registry{db: db}
	r.tables.Content = table.New(db, []byte("r"))
	r.tables.Index = table.New(db, []byte("i"))
	r.tables.Meta = table.New(db, []byte("m"))
	return r
}

// NewMem returns a Registry over a fresh in-memory database.
func NewMem() *Registry {
	return New(memorydb.New())
}

// Register stores content for account. The first registration also appends
// the account to the discovery list; later calls only replace the content.
func (r *Registry) Register(account common.Address, content []byte) error {
	if len(content) == 0 {
		return ErrEmptyContent
	}
	prev, err := r.tables.Content.Get(account.Bytes())
	if err != nil {
		return err
	}
	if prev == nil {
		n, err := r.Len()
		if err != nil {
			return err
		}
		var pos [8]byte
		binary.BigEndian.PutUint64(pos[:], n)
		if err := r.tables.Index.Put(pos[:], account.Bytes()); err != nil {
			return err
		}
		binary.BigEndian.PutUint64(pos[:], n+1)
		if err := r.tables.Meta.Put(countKey, pos[:]); err != nil {
			return err
		}
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return r.tables.Content.Put(account.Bytes(), cp)
}

// ContentOf returns the account's record, or nil if it never registered.
func (r *Registry) ContentOf(account common.Address) ([]byte, error) {
	return r.tables.Content.Get(account.Bytes())
}

// Len returns the number of listed registrants.
func (r *Registry) Len() (uint64, error) {
	buf, err := r.tables.Meta.Get(countKey)
	if err != nil {
		return 0, err
	}
	if buf == nil {
		return 0, nil
	}
	return binary.BigEndian.Uint64(buf), nil
}

// Accounts returns the discovery list in registration order.
func (r *Registry) Accounts() ([]common.Address, error) {
	n, err := r.Len()
	if err != nil {
		return nil, err
	}
	accounts := make([]common.Address, 0, n)
	for i := uint64(0); i < n; i++ {
		var pos [8]byte
		binary.BigEndian.PutUint64(pos[:], i)
		buf, err := r.tables.Index.Get(pos[:])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, common.BytesToAddress(buf))
	}
	return accounts, nil
}
