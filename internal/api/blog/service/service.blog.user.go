package blogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/sadikkartall/cetereleceweb/internal/api/base/service"
	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
	"github.com/sadikkartall/cetereleceweb/internal/common"
	"github.com/sadikkartall/cetereleceweb/internal/global"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[blogmodels.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get blog_users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[blogmodels.User](coll),
	}, nil
}

// FindByUID tìm một user theo external uid
func (s *UserService) FindByUID(ctx context.Context, uid string) (blogmodels.User, error) {
	return s.FindOne(ctx, bson.M{"uid": uid}, nil)
}

// FindAgents trả về danh sách các agent tự động
func (s *UserService) FindAgents(ctx context.Context) ([]blogmodels.User, error) {
	return s.Find(ctx, bson.M{"isAgent": true}, nil)
}

// Follow thiết lập quan hệ follow hai chiều: followerID được thêm vào followers
// của target và targetID được thêm vào following của follower.
// Cả hai phía dùng $addToSet nên follow lặp lại không tạo bản ghi thừa.
func (s *UserService) Follow(ctx context.Context, followerID, targetID primitive.ObjectID) error {
	if followerID == targetID {
		return common.ErrInvalidInput
	}

	if _, err := s.AddToSet(ctx, followerID, "following", targetID.Hex()); err != nil {
		return err
	}
	if _, err := s.AddToSet(ctx, targetID, "followers", followerID.Hex()); err != nil {
		return err
	}
	return nil
}

// Unfollow gỡ quan hệ follow hai chiều
func (s *UserService) Unfollow(ctx context.Context, followerID, targetID primitive.ObjectID) error {
	if _, err := s.PullFromSet(ctx, followerID, "following", targetID.Hex()); err != nil {
		return err
	}
	if _, err := s.PullFromSet(ctx, targetID, "followers", followerID.Hex()); err != nil {
		return err
	}
	return nil
}
