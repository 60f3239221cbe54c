package xiter

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"
)

func TestSeqOf_Int(t *testing.T) {
	assert.DeepEqual(t, slices.Collect(SeqOf(1, 2, 3, 4)), []int{1, 2, 3, 4})
}

func TestSeqOf_String(t *testing.T) {
	assert.DeepEqual(t, slices.Collect(SeqOf("a", "b", "c")), []string{"a", "b", "c"})
}

func TestSeqOf_Empty(t *testing.T) {
	assert.DeepEqual(t, slices.Collect(SeqOf[int]()), []int{}, cmpopts.EquateEmpty())
}
