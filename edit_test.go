package vec

import (
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestSplitAt(t *testing.T) {
	v := Of(1, 2, 3, 4)

	t.Run("Interior", func(t *testing.T) {
		left, right := v.SplitAt(2)
		assert.EqualItems(t, left.ToSlice(), []int{1, 2})
		assert.EqualItems(t, right.ToSlice(), []int{3, 4})
	})
	t.Run("PastEnd", func(t *testing.T) {
		left, right := v.SplitAt(100)
		assert.EqualItems(t, left.ToSlice(), []int{1, 2, 3, 4})
		assert.True(t, right.IsEmpty())
	})
	t.Run("NonPositive", func(t *testing.T) {
		for _, index := range []int{0, -1, -100} {
			left, right := v.SplitAt(index)
			check.True(t, left.IsEmpty())
			assert.EqualItems(t, right.ToSlice(), []int{1, 2, 3, 4})
		}
	})
	t.Run("Reconstruction", func(t *testing.T) {
		seq := intVec(8)
		for index := 1; index <= seq.Len()+2; index++ {
			left, right := seq.SplitAt(index)
			assert.EqualItems(t, left.Append(right).ToSlice(), seq.ToSlice())
		}
	})
}

func TestRemoveAt(t *testing.T) {
	t.Run("Interior", func(t *testing.T) {
		assert.EqualItems(t, Of(1, 2, 3, 4).RemoveAt(2).ToSlice(), []int{1, 2, 4})
	})
	t.Run("Ends", func(t *testing.T) {
		assert.EqualItems(t, Of(1, 2, 3).RemoveAt(0).ToSlice(), []int{2, 3})
		assert.EqualItems(t, Of(1, 2, 3).RemoveAt(2).ToSlice(), []int{1, 2})
	})
	t.Run("OutOfRange", func(t *testing.T) {
		assert.EqualItems(t, Of(1, 2, 3, 4).RemoveAt(100).ToSlice(), []int{1, 2, 3, 4})
		assert.EqualItems(t, Of(1, 2, 3, 4).RemoveAt(4).ToSlice(), []int{1, 2, 3, 4})
		assert.EqualItems(t, Of(1, 2, 3, 4).RemoveAt(-1).ToSlice(), []int{1, 2, 3, 4})
	})
	t.Run("InputUnchanged", func(t *testing.T) {
		orig := Of(1, 2, 3)
		_ = orig.RemoveAt(1)
		assert.EqualItems(t, orig.ToSlice(), []int{1, 2, 3})
	})
}

func TestInsertAt(t *testing.T) {
	t.Run("Interior", func(t *testing.T) {
		assert.EqualItems(t, Of("a", "c").InsertAt(1, "b").ToSlice(), []string{"a", "b", "c"})
	})
	t.Run("AtEnd", func(t *testing.T) {
		assert.EqualItems(t, Of("a", "c").InsertAt(2, "b").ToSlice(), []string{"a", "c", "b"})
	})
	t.Run("AtStart", func(t *testing.T) {
		assert.EqualItems(t, Of("a", "c").InsertAt(0, "b").ToSlice(), []string{"b", "a", "c"})
	})
	t.Run("OutOfRange", func(t *testing.T) {
		assert.EqualItems(t, Of("a", "c").InsertAt(100, "b").ToSlice(), []string{"a", "c"})
		assert.EqualItems(t, Of("a", "c").InsertAt(3, "b").ToSlice(), []string{"a", "c"})
		assert.EqualItems(t, Of("a", "c").InsertAt(-1, "b").ToSlice(), []string{"a", "c"})
	})
	t.Run("IntoEmpty", func(t *testing.T) {
		assert.EqualItems(t, Empty[string]().InsertAt(0, "b").ToSlice(), []string{"b"})
	})
	t.Run("RemoveInverts", func(t *testing.T) {
		seq := intVec(6)
		for index := 0; index <= seq.Len(); index++ {
			assert.EqualItems(t, seq.InsertAt(index, 99).RemoveAt(index).ToSlice(), seq.ToSlice())
		}
	})
}
