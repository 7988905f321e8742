package operation

import (
	"errors"

	"github.com/golang/snappy"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/onflow/flow-crowdfund/module/irrecoverable"
)

var errUncompressedValue = errors.New("could not uncompress data")

// codec turns stored records into badger values: msgpack, optionally
// followed by snappy block compression. Every failure is an exception, since
// a record that was written by this package must always decode again.
type codec struct {
	compress bool
}

// storeCodec is the codec of all records in the database. Changing it makes
// existing databases unreadable.
var storeCodec = codec{compress: true}

func (c codec) encode(entity interface{}) ([]byte, error) {
	val, err := msgpack.Marshal(entity)
	if err != nil {
		return nil, irrecoverable.NewExceptionf("could not encode %T: %w", entity, err)
	}
	if !c.compress {
		return val, nil
	}
	return snappy.Encode(nil, val), nil
}

func (c codec) decode(val []byte, entity interface{}) error {
	if c.compress {
		raw, err := snappy.Decode(nil, val)
		if err != nil {
			return irrecoverable.NewExceptionf("%s: %w", err, errUncompressedValue)
		}
		val = raw
	}
	err := msgpack.Unmarshal(val, entity)
	if err != nil {
		return irrecoverable.NewExceptionf("could not decode %T: %w", entity, err)
	}
	return nil
}

func encodeEntity(entity interface{}) ([]byte, error) {
	return storeCodec.encode(entity)
}

func decodeValue(val []byte, entity interface{}) error {
	return storeCodec.decode(val, entity)
}
