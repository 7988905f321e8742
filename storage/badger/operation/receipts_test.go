package operation

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
	"github.com/onflow/flow-crowdfund/storage"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func TestReceiptInsertUpdateRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		receipt := unittest.ReceiptFixture()

		err := db.Update(InsertReceipt(receipt))
		require.NoError(t, err)

		err = db.Update(InsertReceipt(receipt))
		require.ErrorIs(t, err, storage.ErrAlreadyExists)

		receipt.Refunded = true
		err = db.Update(UpdateReceipt(receipt))
		require.NoError(t, err)

		var retrieved crowdfund.DonationReceipt
		err = db.View(RetrieveReceipt(receipt.Campaign, receipt.Donor, &retrieved))
		require.NoError(t, err)
		assert.Equal(t, receipt, &retrieved)

		err = db.View(RetrieveReceipt(receipt.Campaign, unittest.IdentifierFixture(), &retrieved))
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestLookupDonorReceipts(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		donor := unittest.IdentifierFixture()
		campaignIDs := unittest.IdentifierListFixture(3)

		err := db.Update(func(tx *badger.Txn) error {
			for _, campaignID := range campaignIDs {
				if err := IndexDonorReceipt(donor, campaignID)(tx); err != nil {
					return err
				}
			}
			// another donor's index must not leak into the lookup
			return IndexDonorReceipt(unittest.IdentifierFixture(), campaignIDs[0])(tx)
		})
		require.NoError(t, err)

		err = db.Update(IndexDonorReceipt(donor, campaignIDs[0]))
		require.ErrorIs(t, err, storage.ErrAlreadyExists)

		var actual []crowdfund.Identifier
		err = db.View(LookupDonorReceipts(donor, &actual))
		require.NoError(t, err)
		assert.ElementsMatch(t, campaignIDs, actual)
	})
}
