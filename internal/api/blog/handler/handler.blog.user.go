package bloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/sadikkartall/cetereleceweb/internal/api/base/handler"
	blogdto "github.com/sadikkartall/cetereleceweb/internal/api/blog/dto"
	blogsvc "github.com/sadikkartall/cetereleceweb/internal/api/blog/service"
	"github.com/sadikkartall/cetereleceweb/internal/common"
)

// UserHandler xử lý các yêu cầu liên quan đến người dùng:
// follow/unfollow và gợi ý tác giả.
type UserHandler struct {
	UserService *blogsvc.UserService
	PostService *blogsvc.PostService
}

// NewUserHandler khởi tạo UserHandler mới
func NewUserHandler() (*UserHandler, error) {
	userService, err := blogsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	postService, err := blogsvc.NewPostService()
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %v", err)
	}
	return &UserHandler{UserService: userService, PostService: postService}, nil
}

// HandleFindById tìm một user theo ID
func (h *UserHandler) HandleFindById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ObjectIDFromParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.UserService.FindOneById(c.Context(), id)
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindAgents liệt kê các agent tự động
func (h *UserHandler) HandleFindAgents(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		data, err := h.UserService.FindAgents(c.Context())
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// HandleRecommendedAuthors trả về danh sách tác giả được gợi ý cho user.
// Query params: forUser (hex ObjectID, tùy chọn), limit (mặc định 5).
func (h *UserHandler) HandleRecommendedAuthors(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var query blogdto.RecommendQueryInput
		if err := basehdl.ParseQueryParams(c, &query); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.UserService.RecommendedAuthors(c.Context(), h.PostService, query.ForUser, int(query.Limit))
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// followAction parse target ID và follower rồi gọi action tương ứng
func (h *UserHandler) followAction(
	c fiber.Ctx,
	action func(c fiber.Ctx, followerID, targetID primitive.ObjectID) error,
) error {
	return basehdl.SafeHandler(c, func() error {
		targetID, err := basehdl.ObjectIDFromParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input blogdto.EngagementInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		followerID, err := primitive.ObjectIDFromHex(input.UserID)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("userId '%s' không đúng định dạng MongoDB ObjectID", input.UserID),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		err = action(c, followerID, targetID)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleFollow cho user trong body follow user trong URL params
func (h *UserHandler) HandleFollow(c fiber.Ctx) error {
	return h.followAction(c, func(c fiber.Ctx, followerID, targetID primitive.ObjectID) error {
		return h.UserService.Follow(c.Context(), followerID, targetID)
	})
}

// HandleUnfollow cho user trong body unfollow user trong URL params
func (h *UserHandler) HandleUnfollow(c fiber.Ctx) error {
	return h.followAction(c, func(c fiber.Ctx, followerID, targetID primitive.ObjectID) error {
		return h.UserService.Unfollow(c.Context(), followerID, targetID)
	})
}
