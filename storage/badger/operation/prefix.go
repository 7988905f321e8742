package operation

import (
	"encoding/binary"
	"fmt"

	"github.com/onflow/flow-crowdfund/model/crowdfund"
)

const (

	// codes for singletons and counters
	codeSystemConfig     = 10
	codeCampaignSequence = 11
	codeEventSequence    = 12 // per campaign
	codeSignerNonce      = 13 // per signer

	// codes for entities
	codeCampaign = 20
	codeReceipt  = 21
	codeBalance  = 22
	codeEvent    = 23

	// codes for indexes
	codeDonorReceipts = 30
)

func makePrefix(code byte, keys ...interface{}) []byte {
	prefix := make([]byte, 1)
	prefix[0] = code
	for _, key := range keys {
		prefix = append(prefix, b(key)...)
	}
	return prefix
}

func b(v interface{}) []byte {
	switch i := v.(type) {
	case uint8:
		return []byte{i}
	case uint32:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, i)
		return b
	case uint64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, i)
		return b
	case string:
		return []byte(i)
	case crowdfund.Identifier:
		return i[:]
	default:
		panic(fmt.Sprintf("unsupported type to convert (%T)", v))
	}
}
