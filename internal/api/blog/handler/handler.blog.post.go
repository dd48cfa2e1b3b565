// Package bloghdl chứa các HTTP handler thuộc domain blog: bài viết,
// bình luận, người dùng và các thao tác engagement.
package bloghdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basehdl "github.com/sadikkartall/cetereleceweb/internal/api/base/handler"
	blogdto "github.com/sadikkartall/cetereleceweb/internal/api/blog/dto"
	blogsvc "github.com/sadikkartall/cetereleceweb/internal/api/blog/service"
)

// PostHandler xử lý các yêu cầu liên quan đến bài viết
type PostHandler struct {
	PostService *blogsvc.PostService
}

// NewPostHandler khởi tạo PostHandler mới
func NewPostHandler() (*PostHandler, error) {
	service, err := blogsvc.NewPostService()
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %v", err)
	}
	return &PostHandler{PostService: service}, nil
}

// HandleCreate tạo mới một bài viết từ request body
func (h *PostHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input blogdto.PostCreateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.PostService.Create(c.Context(), &input)
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// HandleFindById tìm một bài viết theo ID
func (h *PostHandler) HandleFindById(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ObjectIDFromParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.PostService.FindOneById(c.Context(), id)
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// postListFilter dựng filter Mongo cho danh sách bài viết từ các query
// param tùy chọn. AuthorId không đúng định dạng ObjectID bị bỏ qua.
func postListFilter(authorID, category string) bson.M {
	filter := bson.M{}
	if authorID != "" {
		if oid, err := primitive.ObjectIDFromHex(authorID); err == nil {
			filter["authorId"] = oid
		}
	}
	if category != "" {
		filter["category"] = category
	}
	return filter
}

// HandleFind liệt kê bài viết với phân trang, mới nhất trước.
// Query params: page (mặc định 1), limit (mặc định 10),
// authorId và category (tùy chọn, lọc theo tác giả / danh mục).
func (h *PostHandler) HandleFind(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
		if err != nil || limit <= 0 {
			limit = 10
		}

		filter := postListFilter(c.Query("authorId"), c.Query("category"))

		opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		data, err := h.PostService.FindWithPagination(c.Context(), filter, page, limit, opts)
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// HandleUpdate cập nhật một bài viết theo ID (partial update)
func (h *PostHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ObjectIDFromParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		var input blogdto.PostUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.PostService.Update(c.Context(), id, &input)
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// HandleDelete xóa một bài viết theo ID
func (h *PostHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ObjectIDFromParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		err = h.PostService.DeleteById(c.Context(), id)
		basehdl.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleTrending trả về danh sách bài viết trending theo TrendScore
func (h *PostHandler) HandleTrending(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var query blogdto.TrendingQueryInput
		if err := basehdl.ParseQueryParams(c, &query); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.PostService.TrendingPosts(c.Context(), int(query.Limit), query.WindowDays)
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// HandleView tăng view count của bài viết
func (h *PostHandler) HandleView(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ObjectIDFromParam(c, "id")
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.PostService.IncrementViews(c.Context(), id)
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// engagementAction parse post ID và userId rồi gọi action tương ứng.
// Dùng chung cho like/unlike/bookmark/unbookmark.
func (h *PostHandler) engagementAction(
	c fiber.Ctx,
	action func(c fiber.Ctx, postID primitive.ObjectID, userID string) (interface{}, error),
) error {
	return basehdl.SafeHandler(c, func() error {
		id, err := basehdl.ObjectIDFromParam(c, "id")
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

		data, err := action(c, id, input.UserID)
		basehdl.HandleResponse(c, data, err)
		return nil
	})
}

// HandleLike thêm user vào danh sách like của bài viết (idempotent)
func (h *PostHandler) HandleLike(c fiber.Ctx) error {
	return h.engagementAction(c, func(c fiber.Ctx, postID primitive.ObjectID, userID string) (interface{}, error) {
		return h.PostService.Like(c.Context(), postID, userID)
	})
}

// HandleUnlike gỡ user khỏi danh sách like của bài viết
func (h *PostHandler) HandleUnlike(c fiber.Ctx) error {
	return h.engagementAction(c, func(c fiber.Ctx, postID primitive.ObjectID, userID string) (interface{}, error) {
		return h.PostService.Unlike(c.Context(), postID, userID)
	})
}

// HandleBookmark thêm user vào danh sách bookmark của bài viết (idempotent)
func (h *PostHandler) HandleBookmark(c fiber.Ctx) error {
	return h.engagementAction(c, func(c fiber.Ctx, postID primitive.ObjectID, userID string) (interface{}, error) {
		return h.PostService.Bookmark(c.Context(), postID, userID)
	})
}

// HandleUnbookmark gỡ user khỏi danh sách bookmark của bài viết
func (h *PostHandler) HandleUnbookmark(c fiber.Ctx) error {
	return h.engagementAction(c, func(c fiber.Ctx, postID primitive.ObjectID, userID string) (interface{}, error) {
		return h.PostService.Unbookmark(c.Context(), postID, userID)
	})
}
