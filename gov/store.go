package gov

import (
	"github.com/Fantom-foundation/lachesis-base/kvdb"
	"github.com/Fantom-foundation/lachesis-base/kvdb/memorydb"
	"github.com/Fantom-foundation/lachesis-base/kvdb/table"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// bindingKey is the single key under which the trust binding lives.
var bindingKey = []byte("b")

// Store persists the aggregator's three pieces of durable state:
// proposal records, (proposal, account) vote markers, and the trust
// binding. Everything is RLP-encoded into kvdb tables so any kvdb backend
// (in-memory for tests and the fakenet runtime, on-disk otherwise) works.
type Store struct {
	db kvdb.Store

	tables struct {
		Proposals kvdb.Store
		Votes     kvdb.Store
		Binding   kvdb.Store
	}
}

// NewStore wraps the given database with the aggregator's table layout.
func NewStore(db kvdb.Store) *Store {
	s := &Store{db: db}
	s.tables.Proposals = table.New(db, []byte("p"))
	s.tables.Votes = table.New(db, []byte("v"))
	s.tables.Binding = table.New(db, []byte("c"))
	return s
}

// NewMemStore returns a Store over a fresh in-memory database.
func NewMemStore() *Store {
	return NewStore(memorydb.New())
}

// SetProposal writes the record at id, overwriting any previous one.
func (s *Store) SetProposal(id ProposalID, p *Proposal) error {
	buf, err := rlp.EncodeToBytes(p)
	if err != nil {
		return err
	}
	return s.tables.Proposals.Put(id.Bytes(), buf)
}

// GetProposal reads the record at id, or nil if the id was never created.
func (s *Store) GetProposal(id ProposalID) (*Proposal, error) {
	buf, err := s.tables.Proposals.Get(id.Bytes())
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}
	p := new(Proposal)
	if err := rlp.DecodeBytes(buf, p); err != nil {
		return nil, err
	}
	return p, nil
}

func voteKey(id ProposalID, voter common.Address) []byte {
	key := make([]byte, 0, common.HashLength+common.AddressLength)
	key = append(key, id.Bytes()...)
	key = append(key, voter.Bytes()...)
	return key
}

// HasVote reports whether the (id, voter) marker is present.
func (s *Store) HasVote(id ProposalID, voter common.Address) (bool, error) {
	return s.tables.Votes.Has(voteKey(id, voter))
}

// AddVote inserts the (id, voter) marker. Presence is permanent: markers
// survive even a re-creation of the proposal id.
func (s *Store) AddVote(id ProposalID, voter common.Address) error {
	return s.tables.Votes.Put(voteKey(id, voter), []byte{1})
}

// SetBinding writes the trust binding. The set-once policy is enforced by
// the aggregator, not here.
func (s *Store) SetBinding(b *Binding) error {
	buf, err := rlp.EncodeToBytes(b)
	if err != nil {
		return err
	}
	return s.tables.Binding.Put(bindingKey, buf)
}

// GetBinding reads the trust binding, or nil if none was configured.
func (s *Store) GetBinding() (*Binding, error) {
	buf, err := s.tables.Binding.Get(bindingKey)
	if err != nil {
		return nil, err
	}
	if buf == nil {
		return nil, nil
	}
	b := new(Binding)
	if err := rlp.DecodeBytes(buf, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
