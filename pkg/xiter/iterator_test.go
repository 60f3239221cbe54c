package xiter

import (
	"slices"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestSlice_BothEnds(t *testing.T) {
	it := Slice([]int{1, 2, 3, 4, 5})
	v, ok := it.Next()
	assert.Assert(t, ok)
	assert.Equal(t, v, 1)
	v, ok = it.NextBack()
	assert.Assert(t, ok)
	assert.Equal(t, v, 5)
	assert.Equal(t, it.Len(), 3)
	assert.Equal(t, it.SizeHint(), Exact(3))
	assert.DeepEqual(t, Collect(it), []int{2, 3, 4})
	_, ok = it.Next()
	assert.Assert(t, !ok)
	_, ok = it.NextBack()
	assert.Assert(t, !ok)
}

func TestSlice_Nth(t *testing.T) {
	it := Slice([]int{0, 1, 2, 3, 4, 5})
	v, ok := Nth(it, 1)
	assert.Assert(t, ok)
	assert.Equal(t, v, 1)
	v, ok = NthBack(it, 1)
	assert.Assert(t, ok)
	assert.Equal(t, v, 4)
	assert.Equal(t, it.Len(), 2)
	_, ok = Nth(it, 2)
	assert.Assert(t, !ok)
	assert.Equal(t, it.Len(), 0)
}

func TestNth_Negative(t *testing.T) {
	assert.Assert(t, is.Panics(func() { Nth[int](Slice([]int{1}), -1) }))
}

func TestSlice_ForEachStops(t *testing.T) {
	it := Slice([]int{1, 2, 3, 4})
	var seen []int
	drained := it.ForEach(func(v int) bool {
		seen = append(seen, v)
		return v < 2
	})
	assert.Assert(t, !drained)
	assert.DeepEqual(t, seen, []int{1, 2})
	assert.DeepEqual(t, Collect(it), []int{3, 4})
}

func TestSlice_Last(t *testing.T) {
	it := Slice([]string{"a", "b", "c"})
	v, ok := Last[string](it)
	assert.Assert(t, ok)
	assert.Equal(t, v, "c")
	assert.Equal(t, it.Len(), 0)
	_, ok = Last[string](it)
	assert.Assert(t, !ok)
}

func TestRunes(t *testing.T) {
	it := Runes("aé日🎉")
	h := it.SizeHint()
	assert.Equal(t, h.Lower, 3)
	assert.Equal(t, h.Upper, 10)
	v, ok := it.NextBack()
	assert.Assert(t, ok)
	assert.Equal(t, v, '🎉')
	assert.DeepEqual(t, Collect[rune](it), []rune("aé日"))
	_, ok = it.Next()
	assert.Assert(t, !ok)
	assert.Equal(t, it.SizeHint(), Exact(0))
}

func TestRunes_Backward(t *testing.T) {
	got := slices.Collect(Backward[rune](Runes("héllo")))
	assert.DeepEqual(t, got, []rune("olléh"))
}

func TestRunes_Invalid(t *testing.T) {
	s := "a\xffb"
	var want []rune
	for _, r := range s {
		want = append(want, r)
	}
	assert.DeepEqual(t, Collect[rune](Runes(s)), want)
}

func TestPull(t *testing.T) {
	it := Pull(SeqOf(1, 2, 3))
	assert.Equal(t, it.SizeHint(), AtLeast(0))
	_, ok := Len[int](it)
	assert.Assert(t, !ok)
	assert.Assert(t, !IsTrustedLen[int](it))
	assert.DeepEqual(t, Collect[int](it), []int{1, 2, 3})
	assert.Equal(t, it.SizeHint(), Exact(0))
	_, ok = it.Next()
	assert.Assert(t, !ok)
}

func TestPull_Stop(t *testing.T) {
	it := Pull(SeqOf(1, 2, 3))
	v, _ := it.Next()
	assert.Equal(t, v, 1)
	it.Stop()
	it.Stop()
	_, ok := it.Next()
	assert.Assert(t, !ok)
}

func TestFold(t *testing.T) {
	sum := func(acc, v int) int { return acc + v }
	assert.Equal(t, Fold[int](Slice([]int{1, 2, 3}), 0, sum), 6)
	assert.Equal(t, Fold[int](Pull(SeqOf(1, 2, 3)), 10, sum), 16)

	concat := func(acc string, v rune) string { return acc + string(v) }
	assert.Equal(t, RFold[rune](Runes("abc"), "", concat), "cba")
}

func TestTryFold(t *testing.T) {
	upTo := func(limit int) func(int, int) (int, bool) {
		return func(acc, v int) (int, bool) {
			if v > limit {
				return 0, false
			}
			return acc + v, true
		}
	}
	it := Slice([]int{1, 2, 3, 4})
	acc, ok := TryFold[int](it, 0, upTo(2))
	assert.Assert(t, !ok)
	assert.Equal(t, acc, 3)
	assert.DeepEqual(t, Collect[int](it), []int{4})

	acc, ok = TryRFold[int](Slice([]int{1, 2, 3}), 0, upTo(3))
	assert.Assert(t, ok)
	assert.Equal(t, acc, 6)
}

func TestCount(t *testing.T) {
	assert.Equal(t, Count[int](Slice([]int{1, 2, 3})), 3)
	assert.Equal(t, Count[rune](Runes("日本")), 2)
	assert.Equal(t, Count[int](Pull(SeqOf[int]())), 0)
}

func TestLen(t *testing.T) {
	n, ok := Len[int](Slice(make([]int, 7)))
	assert.Assert(t, ok)
	assert.Equal(t, n, 7)
	assert.Assert(t, IsTrustedLen[int](Slice([]int{1})))

	// ASCII pins both bounds to the same value only when empty.
	_, ok = Len[rune](Runes("ab"))
	assert.Assert(t, !ok)
	n, ok = Len[rune](Runes(""))
	assert.Assert(t, ok)
	assert.Equal(t, n, 0)
}

func TestAll_Break(t *testing.T) {
	it := Slice([]int{1, 2, 3, 4})
	for v := range All[int](it) {
		if v == 2 {
			break
		}
	}
	assert.DeepEqual(t, Collect[int](it), []int{3, 4})
}
