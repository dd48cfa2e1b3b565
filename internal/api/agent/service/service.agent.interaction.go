package agentsvc

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	agentmodels "github.com/sadikkartall/cetereleceweb/internal/api/agent/models"
	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
	"github.com/sadikkartall/cetereleceweb/internal/logger"
	"github.com/sadikkartall/cetereleceweb/internal/utility"
)

// Các loại tương tác mà agent có thể thực hiện
const (
	ActionLike    = "like"
	ActionComment = "comment"
	ActionFollow  = "follow"
)

// InteractionStore là các thao tác persist mà simulator cần, domain blog cung cấp.
// Mọi mutation đều phải là atomic ($addToSet/$inc) để nhiều agent hành động
// đồng thời trên cùng một post không làm mất update của nhau.
type InteractionStore interface {
	AddPostLike(ctx context.Context, postID primitive.ObjectID, userID string) error
	InsertComment(ctx context.Context, postID, authorID primitive.ObjectID, content string) error
	AddFollow(ctx context.Context, followerID, targetID primitive.ObjectID) error
}

// InteractionWeights là phân phối xác suất giữa các loại tương tác.
// Mặc định ba loại có trọng số bằng nhau (uniform).
type InteractionWeights struct {
	Like    float64
	Comment float64
	Follow  float64
}

// DefaultInteractionWeights trả về phân phối uniform
func DefaultInteractionWeights() InteractionWeights {
	return InteractionWeights{Like: 1, Comment: 1, Follow: 1}
}

// InteractionSimulator mô phỏng tương tác của agents với nội dung:
// thích bài, bình luận với nội dung mẫu, và follow agent khác.
// Nhiều lượt Simulate có thể chạy đồng thời trên cùng một simulator,
// rng phải được giữ sau mu vì *rand.Rand không thread-safe.
type InteractionSimulator struct {
	store   InteractionStore
	weights InteractionWeights

	mu  sync.Mutex
	rng *rand.Rand
}

// NewInteractionSimulator tạo mới simulator với phân phối tương tác cho trước
func NewInteractionSimulator(store InteractionStore, weights InteractionWeights) *InteractionSimulator {
	if weights.Like <= 0 && weights.Comment <= 0 && weights.Follow <= 0 {
		weights = DefaultInteractionWeights()
	}
	return &InteractionSimulator{
		store:   store,
		weights: weights,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// drawAction rút một loại tương tác theo phân phối trọng số
func (s *InteractionSimulator) drawAction() string {
	total := s.weights.Like + s.weights.Comment + s.weights.Follow

	s.mu.Lock()
	roll := s.rng.Float64() * total
	s.mu.Unlock()
	switch {
	case roll < s.weights.Like:
		return ActionLike
	case roll < s.weights.Like+s.weights.Comment:
		return ActionComment
	default:
		return ActionFollow
	}
}

// interact thực hiện một tương tác cho một agent.
// Like đã tồn tại và follow đã tồn tại là no-op (kiểm tra trước, và chính
// $addToSet ở storage layer cũng đảm bảo không có bản ghi lặp).
func (s *InteractionSimulator) interact(ctx context.Context, agent *blogmodels.User, agents []blogmodels.User, post *blogmodels.Post) error {
	log := logger.GetAppLogger()
	action := s.drawAction()

	switch action {
	case ActionLike:
		if utility.Contains(post.Likes, agent.ID.Hex()) {
			return nil // Đã thích rồi
		}
		if err := s.store.AddPostLike(ctx, post.ID, agent.ID.Hex()); err != nil {
			return err
		}
		log.WithFields(map[string]interface{}{
			"agent": agent.DisplayName,
			"post":  post.ID.Hex(),
		}).Info("👍 [AGENT_INTERACT] Agent đã thích một bài viết")

	case ActionComment:
		s.mu.Lock()
		content := utility.PickOne(s.rng, agentmodels.CannedComments)
		s.mu.Unlock()
		if err := s.store.InsertComment(ctx, post.ID, agent.ID, content); err != nil {
			return err
		}
		log.WithFields(map[string]interface{}{
			"agent": agent.DisplayName,
			"post":  post.ID.Hex(),
		}).Info("💬 [AGENT_INTERACT] Agent đã bình luận một bài viết")

	case ActionFollow:
		// Chọn một agent khác chưa được follow
		candidates := make([]blogmodels.User, 0, len(agents))
		for _, other := range agents {
			if other.ID != agent.ID && !utility.Contains(agent.Following, other.ID.Hex()) {
				candidates = append(candidates, other)
			}
		}
		if len(candidates) == 0 {
			return nil
		}
		s.mu.Lock()
		target := utility.PickOne(s.rng, candidates)
		s.mu.Unlock()
		if err := s.store.AddFollow(ctx, agent.ID, target.ID); err != nil {
			return err
		}
		log.WithFields(map[string]interface{}{
			"agent":  agent.DisplayName,
			"target": target.DisplayName,
		}).Info("➕ [AGENT_INTERACT] Agent đã follow một agent khác")
	}

	return nil
}

// Simulate chạy một vòng tương tác: mỗi agent trong subset thực hiện một
// tương tác ngẫu nhiên trên tối đa postsPerAgent bài viết trong candidates.
// Agent không tương tác với bài viết của chính mình.
// Lỗi của một agent chỉ được log, không chặn các agent còn lại.
func (s *InteractionSimulator) Simulate(ctx context.Context, agents []blogmodels.User, posts []blogmodels.Post, postsPerAgent int) {
	if len(agents) == 0 || len(posts) == 0 {
		return
	}
	if postsPerAgent <= 0 {
		postsPerAgent = 1
	}

	log := logger.GetAppLogger()
	for i := range agents {
		agent := &agents[i]

		// Loại bài viết của chính agent khỏi candidates
		candidates := make([]blogmodels.Post, 0, len(posts))
		for _, post := range posts {
			if post.AuthorID != agent.ID {
				candidates = append(candidates, post)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		s.mu.Lock()
		picked := utility.Sample(s.rng, candidates, postsPerAgent)
		s.mu.Unlock()

		for _, post := range picked {
			if err := s.interact(ctx, agent, agents, &post); err != nil {
				log.WithError(err).WithFields(map[string]interface{}{
					"agent": agent.DisplayName,
				}).Error("❌ [AGENT_INTERACT] Tương tác thất bại")
			}
		}
	}
}
