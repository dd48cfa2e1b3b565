package common

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ConvertMongoError chuyển đổi lỗi từ MongoDB driver sang *Error chuẩn của hệ thống.
// Các lỗi không nhận diện được sẽ trả về lỗi truy vấn chung kèm lỗi gốc trong Details.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Không tìm thấy document
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	// Timeout / context bị hủy khi truy vấn
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewError(ErrCodeDatabaseConnection, "Truy vấn MongoDB bị timeout hoặc bị hủy", StatusServiceUnavailable, err)
	}

	// Lỗi duplicate key (unique index)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}

	// Lỗi network/server selection
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return NewError(ErrCodeDatabaseConnection, "Lỗi kết nối MongoDB", StatusServiceUnavailable, err)
	}

	// Các write error khác
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		return NewError(ErrCodeDatabaseQuery, "Lỗi ghi dữ liệu MongoDB", StatusInternalServerError, err)
	}

	return NewError(ErrCodeDatabaseQuery, "Lỗi truy vấn MongoDB", StatusInternalServerError, err)
}
