package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

func TestID(t *testing.T) {
	id := crowdfund.Identifier{0x01, 0xff}

	assert.Equal(t, id[:], ID(id))
	assert.Len(t, ID(id), crowdfund.IdentifierLen)
}
