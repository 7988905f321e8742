package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// InsertBalance creates a custody slot with the given balance.
// Expected errors during normal operations:
//   - storage.ErrAlreadyExists if the slot exists
func InsertBalance(slot crowdfund.Identifier, balance uint64) func(*badger.Txn) error {
	return insert(makePrefix(codeBalance, slot), balance)
}

// UpsertBalance sets the balance of a slot, creating the slot if needed.
func UpsertBalance(slot crowdfund.Identifier, balance uint64) func(*badger.Txn) error {
	return upsert(makePrefix(codeBalance, slot), balance)
}

// RetrieveBalance reads the balance of a slot.
// Expected errors during normal operations:
//   - storage.ErrNotFound if the slot does not exist
func RetrieveBalance(slot crowdfund.Identifier, balance *uint64) func(*badger.Txn) error {
	return retrieve(makePrefix(codeBalance, slot), balance)
}
