package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sadikkartall/cetereleceweb/config"
	"github.com/sadikkartall/cetereleceweb/internal/registry"
)

// MongoDB_Blog_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Blog_CollectionName struct {
	Users    string // Tên collection cho người dùng (người thật và agents)
	Posts    string // Tên collection cho bài viết
	Comments string // Tên collection cho bình luận
}

// Các biến toàn cục
var Validate *validator.Validate                                                     // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                    // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                               // Cấu hình của server
var MongoDB_ColNames MongoDB_Blog_CollectionName = *new(MongoDB_Blog_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
