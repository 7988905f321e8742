package operation

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/storage"
)

// IncrementCampaignSequence reads the store-wide campaign sequence into
// current and stores its successor. A fresh store starts at 0.
func IncrementCampaignSequence(current *uint64) func(*badger.Txn) error {
	return increment(makePrefix(codeCampaignSequence), current)
}

// IncrementEventSequence reads the next journal position of the campaign into
// current and stores its successor.
func IncrementEventSequence(campaignID crowdfund.Identifier, current *uint64) func(*badger.Txn) error {
	return increment(makePrefix(codeEventSequence, campaignID), current)
}

func increment(key []byte, current *uint64) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		var value uint64
		err := retrieve(key, &value)(tx)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("could not read sequence: %w", err)
		}
		*current = value
		return upsert(key, value+1)(tx)
	}
}

// RetrieveSignerNonce reads the highest request nonce the signer used. A
// signer that never had a request accepted holds nonce 0.
func RetrieveSignerNonce(signer crowdfund.Identifier, nonce *uint64) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		err := retrieve(makePrefix(codeSignerNonce, signer), nonce)(tx)
		if errors.Is(err, storage.ErrNotFound) {
			*nonce = 0
			return nil
		}
		return err
	}
}

// UpsertSignerNonce stores the highest request nonce the signer used.
func UpsertSignerNonce(signer crowdfund.Identifier, nonce uint64) func(*badger.Txn) error {
	return upsert(makePrefix(codeSignerNonce, signer), nonce)
}
