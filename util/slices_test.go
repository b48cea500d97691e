package util

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneSliceFunc(t *testing.T) {
	assert.Nil(t, CloneSliceFunc(nil, slices.Clone[[]byte]))

	src := [][]byte{[]byte("a"), []byte("b")}
	dst := CloneSliceFunc(src, slices.Clone[[]byte])
	dst[0][0] = 'z'
	assert.Equal(t, []byte("a"), src[0])
	assert.Equal(t, []byte("b"), dst[1])
}
