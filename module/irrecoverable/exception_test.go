package irrecoverable

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestException(t *testing.T) {
	err := NewExceptionf("could not decode: %w", errSentinel)
	assert.True(t, IsException(err))
	assert.False(t, errors.Is(err, errSentinel))
	assert.Equal(t, "could not decode: sentinel", err.Error())

	wrapped := fmt.Errorf("context: %w", err)
	assert.True(t, IsException(wrapped))

	assert.False(t, IsException(errSentinel))
	assert.True(t, IsException(NewException(errSentinel)))
}
