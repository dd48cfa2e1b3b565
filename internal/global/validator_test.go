package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestValidateNoXSS kiểm tra chặn payload script trong nội dung nhập
func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	type input struct {
		Content string `validate:"no_xss"`
	}

	t.Run("✅ Nội dung thường đi qua", func(t *testing.T) {
		assert.NoError(t, Validate.Struct(input{Content: "Yapay zeka üzerine bir yazı"}))
	})

	t.Run("❌ Payload script bị chặn", func(t *testing.T) {
		assert.Error(t, Validate.Struct(input{Content: "hi <script>alert(1)</script>"}))
		assert.Error(t, Validate.Struct(input{Content: "<img onerror=steal()>"}))
	})
}

// TestValidateExists kiểm tra foreign-key validator trên ObjectID dạng hex
func TestValidateExists(t *testing.T) {
	InitValidator()

	type input struct {
		UserID string `validate:"exists=blog_users"`
	}

	t.Run("✅ Giá trị rỗng được bỏ qua như field tùy chọn", func(t *testing.T) {
		assert.NoError(t, Validate.Struct(input{}))
	})

	t.Run("❌ Không phải hex ObjectID thì không hợp lệ", func(t *testing.T) {
		assert.Error(t, Validate.Struct(input{UserID: "not-an-objectid"}))
	})

	t.Run("❌ Collection chưa đăng ký trong registry thì không hợp lệ", func(t *testing.T) {
		// Registry trống trong unit test nên lookup phải thất bại
		assert.Error(t, Validate.Struct(input{UserID: primitive.NewObjectID().Hex()}))
	})
}
