package blogsvc

import "go.mongodb.org/mongo-driver/bson/primitive"

// mustObjectID parse hex thành ObjectID, trả về NilObjectID nếu hex không hợp lệ.
// Chỉ dùng ở những chỗ id không hợp lệ tương đương với "không tìm thấy".
func mustObjectID(hex string) primitive.ObjectID {
	id, _ := primitive.ObjectIDFromHex(hex)
	return id
}
