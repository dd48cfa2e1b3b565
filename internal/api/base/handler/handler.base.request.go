package basehdl

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sadikkartall/cetereleceweb/internal/common"
	"github.com/sadikkartall/cetereleceweb/internal/global"
)

// ParseRequestBody parse request body JSON vào struct đích
func ParseRequestBody(c fiber.Ctx, out interface{}) error {
	if err := c.Bind().Body(out); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// ParseQueryParams parse query string vào struct đích (struct tag `query`)
func ParseQueryParams(c fiber.Ctx, out interface{}) error {
	if err := c.Bind().Query(out); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Tham số truy vấn không hợp lệ. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// ValidateInput validate struct theo struct tag `validate`.
// Trả về lỗi có danh sách field vi phạm để client biết cần sửa gì.
func ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			details := make([]map[string]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				details = append(details, map[string]string{
					"field": fieldErr.Field(),
					"rule":  fieldErr.Tag(),
					"value": fmt.Sprintf("%v", fieldErr.Value()),
				})
			}
			return common.NewError(
				common.ErrCodeValidationInput,
				"Dữ liệu đầu vào không hợp lệ",
				common.StatusBadRequest,
				details,
			)
		}
		return common.NewError(common.ErrCodeValidationInput, err.Error(), common.StatusBadRequest, nil)
	}
	return nil
}

// ObjectIDFromParam lấy và validate một ObjectID từ URI params
func ObjectIDFromParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	raw := c.Params(name)
	if raw == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Tham số '%s' không được để trống trong URL params", name),
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(raw) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", raw),
			common.StatusBadRequest,
			nil,
		)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID", raw),
			common.StatusBadRequest,
			err,
		)
	}
	return id, nil
}
