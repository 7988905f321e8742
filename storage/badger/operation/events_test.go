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

func TestEventsInsertLookup(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		campaignID := unittest.IdentifierFixture()

		// insert in reverse to check the journal comes back ordered
		expected := make([]crowdfund.Event, 0, 300)
		for seq := uint64(0); seq < 300; seq++ {
			expected = append(expected, *unittest.EventFixture(campaignID, seq))
		}
		err := db.Update(func(tx *badger.Txn) error {
			for i := len(expected) - 1; i >= 0; i-- {
				if err := InsertEvent(&expected[i])(tx); err != nil {
					return err
				}
			}
			return InsertEvent(unittest.EventFixture(unittest.IdentifierFixture(), 0))(tx)
		})
		require.NoError(t, err)

		err = db.Update(InsertEvent(&expected[3]))
		require.ErrorIs(t, err, storage.ErrAlreadyExists)

		var actual []crowdfund.Event
		err = db.View(LookupEvents(campaignID, &actual))
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})
}

func TestEventSequencePerCampaign(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		first := unittest.IdentifierFixture()
		second := unittest.IdentifierFixture()

		var seq uint64
		require.NoError(t, db.Update(IncrementEventSequence(first, &seq)))
		assert.Equal(t, uint64(0), seq)
		require.NoError(t, db.Update(IncrementEventSequence(first, &seq)))
		assert.Equal(t, uint64(1), seq)
		require.NoError(t, db.Update(IncrementEventSequence(second, &seq)))
		assert.Equal(t, uint64(0), seq)
	})
}
