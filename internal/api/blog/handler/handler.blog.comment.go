package bloghdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/sadikkartall/cetereleceweb/internal/api/base/handler"
	blogdto "github.com/sadikkartall/cetereleceweb/internal/api/blog/dto"
	blogsvc "github.com/sadikkartall/cetereleceweb/internal/api/blog/service"
)

// CommentHandler xử lý các yêu cầu liên quan đến bình luận
type CommentHandler struct {
	CommentService *blogsvc.CommentService
}

// NewCommentHandler khởi tạo CommentHandler mới
func NewCommentHandler() (*CommentHandler, error) {
	service, err := blogsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}
	return &CommentHandler{CommentService: service}, nil
}

// HandleCreate tạo mới một bình luận và tăng comment count của bài viết
func (h *CommentHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input blogdto.CommentCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.CommentService.Create(c.Context(), &input)
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindByPost liệt kê bình luận của một bài viết, mới nhất trước
func (h *CommentHandler) HandleFindByPost(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		postID, err := basehdl.ObjectIDFromParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		limit, err := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
		if err != nil || limit <= 0 {
			limit = 50
		}

		data, err := h.CommentService.FindByPost(c.Context(), postID, limit)
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// HandleDelete xóa một bình luận và giảm comment count của bài viết
func (h *CommentHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ObjectIDFromParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err = h.CommentService.Delete(c.Context(), id)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}
