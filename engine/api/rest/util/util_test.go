package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint64Conversion(t *testing.T) {
	value, err := ToUint64(FromUint64(math.MaxUint64))
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), value)

	_, err = ToUint64("18446744073709551616")
	assert.EqualError(t, err, "value overflows uint64 range")

	_, err = ToUint64("-1")
	assert.Error(t, err)

	_, err = ToUint64("")
	assert.Error(t, err)
}

func TestInt64Conversion(t *testing.T) {
	value, err := ToInt64(FromInt64(-50))
	require.NoError(t, err)
	assert.Equal(t, int64(-50), value)

	_, err = ToInt64("5s")
	assert.Error(t, err)
}
