package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// InsertSystemConfig stores the configuration singleton.
// Expected errors during normal operations:
//   - storage.ErrAlreadyExists if the configuration was already initialized
func InsertSystemConfig(cfg *crowdfund.SystemConfig) func(*badger.Txn) error {
	return insert(makePrefix(codeSystemConfig), cfg)
}

// UpdateSystemConfig replaces the configuration singleton.
// Expected errors during normal operations:
//   - storage.ErrNotFound if the configuration was never initialized
func UpdateSystemConfig(cfg *crowdfund.SystemConfig) func(*badger.Txn) error {
	return update(makePrefix(codeSystemConfig), cfg)
}

// RetrieveSystemConfig reads the configuration singleton.
// Expected errors during normal operations:
//   - storage.ErrNotFound if the configuration was never initialized
func RetrieveSystemConfig(cfg *crowdfund.SystemConfig) func(*badger.Txn) error {
	return retrieve(makePrefix(codeSystemConfig), cfg)
}

// RetrieveSystemConfigVersioned reads the configuration singleton together
// with the commit version of the record. The record is not decoded if cached
// reports the version as cached.
// Expected errors during normal operations:
//   - storage.ErrNotFound if the configuration was never initialized
func RetrieveSystemConfigVersioned(cfg *crowdfund.SystemConfig, version *uint64, cached func(uint64) bool) func(*badger.Txn) error {
	return retrieveVersioned(makePrefix(codeSystemConfig), cfg, version, cached)
}
