package operation

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/flow-crowdfund/storage"
	"github.com/onflow/flow-crowdfund/utils/unittest"
)

func TestBalanceInsertUpsertRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		slot := unittest.IdentifierFixture()

		var balance uint64
		err := db.View(RetrieveBalance(slot, &balance))
		require.ErrorIs(t, err, storage.ErrNotFound)

		require.NoError(t, db.Update(InsertBalance(slot, 0)))
		require.ErrorIs(t, db.Update(InsertBalance(slot, 1)), storage.ErrAlreadyExists)

		require.NoError(t, db.Update(UpsertBalance(slot, 42)))
		require.NoError(t, db.View(RetrieveBalance(slot, &balance)))
		assert.Equal(t, uint64(42), balance)

		other := unittest.IdentifierFixture()
		require.NoError(t, db.Update(UpsertBalance(other, 7)))
		require.NoError(t, db.View(RetrieveBalance(other, &balance)))
		assert.Equal(t, uint64(7), balance)
	})
}
