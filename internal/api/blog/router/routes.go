// Package router đăng ký các route thuộc domain blog: Post, Comment, User,
// trending feed và gợi ý tác giả.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	bloghdl "github.com/sadikkartall/cetereleceweb/internal/api/blog/handler"
)

// Register đăng ký tất cả route blog lên v1.
func Register(v1 fiber.Router) error {
	postHandler, err := bloghdl.NewPostHandler()
	if err != nil {
		return fmt.Errorf("create blog post handler: %w", err)
	}
	commentHandler, err := bloghdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("create blog comment handler: %w", err)
	}
	userHandler, err := bloghdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("create blog user handler: %w", err)
	}

	posts := v1.Group("/blog/posts")
	posts.Get("/", postHandler.HandleFind)
	posts.Post("/", postHandler.HandleCreate)
	// Đăng ký /trending trước /:id để không bị nuốt bởi route param
	posts.Get("/trending", postHandler.HandleTrending)
	posts.Get("/:id", postHandler.HandleFindById)
	posts.Put("/:id", postHandler.HandleUpdate)
	posts.Delete("/:id", postHandler.HandleDelete)
	posts.Post("/:id/view", postHandler.HandleView)
	posts.Post("/:id/likes", postHandler.HandleLike)
	posts.Delete("/:id/likes", postHandler.HandleUnlike)
	posts.Post("/:id/bookmarks", postHandler.HandleBookmark)
	posts.Delete("/:id/bookmarks", postHandler.HandleUnbookmark)
	posts.Get("/:id/comments", commentHandler.HandleFindByPost)

	comments := v1.Group("/blog/comments")
	comments.Post("/", commentHandler.HandleCreate)
	comments.Delete("/:id", commentHandler.HandleDelete)

	users := v1.Group("/blog/users")
	users.Get("/agents", userHandler.HandleFindAgents)
	users.Get("/:id", userHandler.HandleFindById)
	users.Post("/:id/follow", userHandler.HandleFollow)
	users.Delete("/:id/follow", userHandler.HandleUnfollow)

	v1.Get("/blog/authors/recommended", userHandler.HandleRecommendedAuthors)

	return nil
}
