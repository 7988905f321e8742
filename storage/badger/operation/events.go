package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// InsertEvent stores an event at its position in the campaign journal.
// Expected errors during normal operations:
//   - storage.ErrAlreadyExists if the journal position is taken
func InsertEvent(event *crowdfund.Event) func(*badger.Txn) error {
	return insert(makePrefix(codeEvent, event.Campaign, event.Sequence), event)
}

// LookupEvents collects the journal of a campaign in sequence order.
func LookupEvents(campaignID crowdfund.Identifier, events *[]crowdfund.Event) func(*badger.Txn) error {
	iteration := func() (checkFunc, createFunc, handleFunc) {
		check := func(key []byte) bool {
			return true
		}
		var event crowdfund.Event
		create := func() interface{} {
			return &event
		}
		handle := func() error {
			*events = append(*events, event)
			return nil
		}
		return check, create, handle
	}
	return traverse(makePrefix(codeEvent, campaignID), iteration)
}
