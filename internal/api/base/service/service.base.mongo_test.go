package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToUpdateData kiểm tra chuyển đổi các dạng input thành UpdateData
func TestToUpdateData(t *testing.T) {
	t.Run("✅ Input đã là *UpdateData thì giữ nguyên", func(t *testing.T) {
		in := &UpdateData{Set: map[string]interface{}{"title": "abc"}}
		out, err := ToUpdateData(in)
		require.NoError(t, err)
		assert.Same(t, in, out)
	})

	t.Run("✅ Input là UpdateData value thì chuyển thành pointer", func(t *testing.T) {
		in := UpdateData{Inc: map[string]interface{}{"views": int64(1)}}
		out, err := ToUpdateData(in)
		require.NoError(t, err)
		assert.Equal(t, in.Inc, out.Inc)
	})

	t.Run("✅ Map thường được wrap trong $set", func(t *testing.T) {
		out, err := ToUpdateData(map[string]interface{}{"title": "Yeni Başlık"})
		require.NoError(t, err)
		require.NotNil(t, out.Set)
		assert.Equal(t, "Yeni Başlık", out.Set["title"])
		assert.Nil(t, out.AddToSet)
	})

	t.Run("✅ Map có operator MongoDB được giữ nguyên cấu trúc", func(t *testing.T) {
		out, err := ToUpdateData(map[string]interface{}{
			"$addToSet": map[string]interface{}{"likes": "user_1"},
			"$inc":      map[string]interface{}{"comments": int64(1)},
		})
		require.NoError(t, err)
		require.NotNil(t, out.AddToSet)
		assert.Equal(t, "user_1", out.AddToSet["likes"])
		require.NotNil(t, out.Inc)
		assert.Nil(t, out.Set)
	})

	t.Run("✅ Struct được chuyển thành $set theo bson tag", func(t *testing.T) {
		type patch struct {
			Title string `bson:"title"`
		}
		out, err := ToUpdateData(patch{Title: "Gezi Notları"})
		require.NoError(t, err)
		require.NotNil(t, out.Set)
		assert.Equal(t, "Gezi Notları", out.Set["title"])
	})
}
