package basesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các helper atomic cho engagement fields (likes, bookmarks, follow graph, counters).
// Dùng $addToSet/$pull/$inc để các thao tác đồng thời từ nhiều agents không ghi đè nhau:
// hai goroutines cùng AddToSet một giá trị thì giá trị chỉ xuất hiện đúng một lần.

// AddToSet thêm value vào array field của document id, bỏ qua nếu value đã tồn tại.
func (s *BaseServiceMongoImpl[T]) AddToSet(ctx context.Context, id primitive.ObjectID, field string, value interface{}) (T, error) {
	update := &UpdateData{
		AddToSet: map[string]interface{}{field: value},
	}
	return s.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, nil)
}

// PullFromSet gỡ value khỏi array field của document id. Không lỗi nếu value không có.
func (s *BaseServiceMongoImpl[T]) PullFromSet(ctx context.Context, id primitive.ObjectID, field string, value interface{}) (T, error) {
	update := &UpdateData{
		Pull: map[string]interface{}{field: value},
	}
	return s.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, nil)
}

// IncField tăng counter field của document id thêm delta (delta âm để giảm).
func (s *BaseServiceMongoImpl[T]) IncField(ctx context.Context, id primitive.ObjectID, field string, delta int64) (T, error) {
	update := &UpdateData{
		Inc: map[string]interface{}{field: delta},
	}
	return s.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, nil)
}
