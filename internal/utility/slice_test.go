package utility

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	t.Run("✅ Tìm thấy phần tử", func(t *testing.T) {
		assert.True(t, Contains([]string{"a", "b", "c"}, "b"))
	})

	t.Run("❌ Không tìm thấy phần tử", func(t *testing.T) {
		assert.False(t, Contains([]int{1, 2, 3}, 4))
		assert.False(t, Contains([]int{}, 1))
	})
}

func TestSample(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	t.Run("✅ Sample trả về đúng số phần tử, không lặp", func(t *testing.T) {
		src := []int{1, 2, 3, 4, 5, 6, 7, 8}
		got := Sample(rng, src, 3)
		assert.Len(t, got, 3)

		seen := map[int]bool{}
		for _, v := range got {
			assert.False(t, seen[v], "phần tử bị lặp: %d", v)
			seen[v] = true
			assert.True(t, Contains(src, v))
		}
	})

	t.Run("✅ Sample với n lớn hơn độ dài slice", func(t *testing.T) {
		src := []string{"x", "y"}
		got := Sample(rng, src, 10)
		assert.Len(t, got, 2)
	})

	t.Run("✅ Sample không thay đổi slice gốc", func(t *testing.T) {
		src := []int{1, 2, 3, 4, 5}
		_ = Sample(rng, src, 5)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, src)
	})

	t.Run("✅ Sample với slice rỗng hoặc n <= 0", func(t *testing.T) {
		assert.Nil(t, Sample(rng, []int{}, 3))
		assert.Nil(t, Sample(rng, []int{1, 2}, 0))
	})
}

func TestPickOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	t.Run("✅ PickOne chọn phần tử thuộc slice", func(t *testing.T) {
		src := []string{"a", "b", "c"}
		for i := 0; i < 20; i++ {
			assert.True(t, Contains(src, PickOne(rng, src)))
		}
	})

	t.Run("✅ PickOne với slice rỗng trả về zero value", func(t *testing.T) {
		assert.Equal(t, "", PickOne(rng, []string{}))
	})
}
