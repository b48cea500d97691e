package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	some := Some(uint64(25))
	v, ok := some.Unpack()
	assert.True(t, ok)
	assert.Equal(t, uint64(25), v)
	assert.True(t, some.IsSome())
	assert.Equal(t, uint64(25), some.Or(64))

	none := None[uint64]()
	_, ok = none.Unpack()
	assert.False(t, ok)
	assert.False(t, none.IsSome())
	assert.Equal(t, uint64(64), none.Or(64))

	assert.Equal(t, Some("x"), OptionalOf("x", true))
	assert.Equal(t, None[string](), OptionalOf("ignored", false))
}
