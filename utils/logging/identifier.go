package logging

import (
	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

// ID returns the raw bytes of an identifier, for use with zerolog's Hex.
func ID(id crowdfund.Identifier) []byte {
	return id[:]
}
