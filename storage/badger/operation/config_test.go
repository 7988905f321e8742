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

func TestSystemConfigInsertUpdateRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		var retrieved crowdfund.SystemConfig
		err := db.View(RetrieveSystemConfig(&retrieved))
		require.ErrorIs(t, err, storage.ErrNotFound)

		cfg := unittest.SystemConfigFixture()
		err = db.Update(UpdateSystemConfig(cfg))
		require.ErrorIs(t, err, storage.ErrNotFound)

		err = db.Update(InsertSystemConfig(cfg))
		require.NoError(t, err)

		err = db.Update(InsertSystemConfig(unittest.SystemConfigFixture()))
		require.ErrorIs(t, err, storage.ErrAlreadyExists)

		err = db.View(RetrieveSystemConfig(&retrieved))
		require.NoError(t, err)
		assert.Equal(t, *cfg, retrieved)

		cfg.DisputeWindowSeconds = 7
		err = db.Update(UpdateSystemConfig(cfg))
		require.NoError(t, err)

		err = db.View(RetrieveSystemConfig(&retrieved))
		require.NoError(t, err)
		assert.Equal(t, int64(7), retrieved.DisputeWindowSeconds)
	})
}

func TestCampaignSequence(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		for i := uint64(0); i < 3; i++ {
			var seq uint64
			err := db.Update(IncrementCampaignSequence(&seq))
			require.NoError(t, err)
			assert.Equal(t, i, seq)
		}
	})
}
