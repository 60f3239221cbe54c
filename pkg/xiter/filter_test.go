package xiter

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"
)

func isEven(n int) bool { return n%2 == 0 }

func TestFilter_Int(t *testing.T) {
	assert.DeepEqual(t, slices.Collect(Filter(SeqOf(1, 2, 3, 4, 5, 6), isEven)), []int{2, 4, 6})
}

func TestFilter_AllFalse(t *testing.T) {
	assert.DeepEqual(t, slices.Collect(Filter(SeqOf(1, 3, 5), isEven)), []int{}, cmpopts.EquateEmpty())
}

func TestFilter_Break(t *testing.T) {
	var got []int
	for v := range Filter(SeqOf(2, 3, 4, 6), isEven) {
		got = append(got, v)
		if v == 4 {
			break
		}
	}
	assert.DeepEqual(t, got, []int{2, 4})
}
