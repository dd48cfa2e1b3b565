package agentsvc

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	agentmodels "github.com/sadikkartall/cetereleceweb/internal/api/agent/models"
	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
	"github.com/sadikkartall/cetereleceweb/internal/utility"
)

// memoryStore là InteractionStore trong bộ nhớ với ngữ nghĩa set-union
// giống $addToSet: thêm giá trị đã tồn tại là no-op.
type memoryStore struct {
	mu       sync.Mutex
	likes    map[primitive.ObjectID]map[string]bool
	comments []string
	follows  map[primitive.ObjectID]map[primitive.ObjectID]bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		likes:   make(map[primitive.ObjectID]map[string]bool),
		follows: make(map[primitive.ObjectID]map[primitive.ObjectID]bool),
	}
}

func (m *memoryStore) AddPostLike(ctx context.Context, postID primitive.ObjectID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.likes[postID] == nil {
		m.likes[postID] = make(map[string]bool)
	}
	m.likes[postID][userID] = true
	return nil
}

func (m *memoryStore) InsertComment(ctx context.Context, postID, authorID primitive.ObjectID, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comments = append(m.comments, content)
	return nil
}

func (m *memoryStore) AddFollow(ctx context.Context, followerID, targetID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.follows[followerID] == nil {
		m.follows[followerID] = make(map[primitive.ObjectID]bool)
	}
	m.follows[followerID][targetID] = true
	return nil
}

func makeAgent(name string) blogmodels.User {
	return blogmodels.User{
		ID:          primitive.NewObjectID(),
		DisplayName: name,
		IsAgent:     true,
		Following:   []string{},
		Followers:   []string{},
	}
}

// TestInteractionSimulator kiểm tra các loại tương tác và tính idempotent
func TestInteractionSimulator(t *testing.T) {
	ctx := context.Background()

	t.Run("✅ Like: hai agents thích đồng thời cùng một bài, set có đúng 2 phần tử", func(t *testing.T) {
		store := newMemoryStore()
		sim := NewInteractionSimulator(store, InteractionWeights{Like: 1})

		post := blogmodels.Post{ID: primitive.NewObjectID(), Likes: []string{}}
		agentA := makeAgent("Agent A")
		agentB := makeAgent("Agent B")

		var wg sync.WaitGroup
		for _, agent := range []blogmodels.User{agentA, agentB} {
			wg.Add(1)
			go func(a blogmodels.User) {
				defer wg.Done()
				p := post
				require.NoError(t, sim.interact(ctx, &a, []blogmodels.User{agentA, agentB}, &p))
			}(agent)
		}
		wg.Wait()

		assert.Len(t, store.likes[post.ID], 2)
	})

	t.Run("✅ Like lặp lại từ cùng agent là no-op", func(t *testing.T) {
		store := newMemoryStore()
		sim := NewInteractionSimulator(store, InteractionWeights{Like: 1})

		agent := makeAgent("Agent")
		post := blogmodels.Post{ID: primitive.NewObjectID(), Likes: []string{agent.ID.Hex()}}

		require.NoError(t, sim.interact(ctx, &agent, []blogmodels.User{agent}, &post))
		assert.Empty(t, store.likes[post.ID], "không có lệnh like mới nào được gửi xuống store")
	})

	t.Run("✅ Comment dùng nội dung mẫu từ taxonomy", func(t *testing.T) {
		store := newMemoryStore()
		sim := NewInteractionSimulator(store, InteractionWeights{Comment: 1})

		agent := makeAgent("Agent")
		post := blogmodels.Post{ID: primitive.NewObjectID()}

		require.NoError(t, sim.interact(ctx, &agent, []blogmodels.User{agent}, &post))
		require.Len(t, store.comments, 1)
		assert.True(t, utility.Contains(agentmodels.CannedComments, store.comments[0]))
	})

	t.Run("✅ Follow bỏ qua chính mình và người đã follow", func(t *testing.T) {
		store := newMemoryStore()
		sim := NewInteractionSimulator(store, InteractionWeights{Follow: 1})

		agentA := makeAgent("Agent A")
		agentB := makeAgent("Agent B")
		agentA.Following = []string{agentB.ID.Hex()} // đã follow B rồi

		post := blogmodels.Post{ID: primitive.NewObjectID()}
		require.NoError(t, sim.interact(ctx, &agentA, []blogmodels.User{agentA, agentB}, &post))
		assert.Empty(t, store.follows[agentA.ID], "không còn ứng viên nào để follow")
	})

	t.Run("✅ Follow chọn agent khác khi có ứng viên", func(t *testing.T) {
		store := newMemoryStore()
		sim := NewInteractionSimulator(store, InteractionWeights{Follow: 1})

		agentA := makeAgent("Agent A")
		agentB := makeAgent("Agent B")

		post := blogmodels.Post{ID: primitive.NewObjectID()}
		require.NoError(t, sim.interact(ctx, &agentA, []blogmodels.User{agentA, agentB}, &post))
		assert.True(t, store.follows[agentA.ID][agentB.ID])
	})

	t.Run("✅ Simulate với danh sách rỗng không panic", func(t *testing.T) {
		sim := NewInteractionSimulator(newMemoryStore(), DefaultInteractionWeights())
		sim.Simulate(ctx, nil, nil, 3)
		sim.Simulate(ctx, []blogmodels.User{makeAgent("A")}, nil, 3)
	})

	t.Run("✅ Agent không tương tác với bài viết của chính mình", func(t *testing.T) {
		store := newMemoryStore()
		sim := NewInteractionSimulator(store, InteractionWeights{Like: 1})

		agent := makeAgent("Agent")
		ownPost := blogmodels.Post{ID: primitive.NewObjectID(), AuthorID: agent.ID}

		sim.Simulate(ctx, []blogmodels.User{agent}, []blogmodels.Post{ownPost}, 3)
		assert.Empty(t, store.likes[ownPost.ID])
	})

	t.Run("✅ Nhiều lượt Simulate đồng thời trên cùng simulator không đua dữ liệu", func(t *testing.T) {
		store := newMemoryStore()
		sim := NewInteractionSimulator(store, InteractionWeights{Like: 1})

		agents := []blogmodels.User{makeAgent("A"), makeAgent("B"), makeAgent("C")}
		author := primitive.NewObjectID()
		posts := []blogmodels.Post{
			{ID: primitive.NewObjectID(), AuthorID: author},
			{ID: primitive.NewObjectID(), AuthorID: author},
		}

		// Hai firing trong cùng một phút chạy song song trên cùng simulator
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sim.Simulate(ctx, agents, posts, 2)
			}()
		}
		wg.Wait()

		liked := 0
		for _, post := range posts {
			liked += len(store.likes[post.ID])
		}
		assert.Positive(t, liked)
	})

	t.Run("✅ Mỗi agent tương tác tối đa postsPerAgent bài viết", func(t *testing.T) {
		store := newMemoryStore()
		sim := NewInteractionSimulator(store, InteractionWeights{Like: 1})

		agent := makeAgent("Agent")
		author := primitive.NewObjectID()
		posts := []blogmodels.Post{
			{ID: primitive.NewObjectID(), AuthorID: author},
			{ID: primitive.NewObjectID(), AuthorID: author},
			{ID: primitive.NewObjectID(), AuthorID: author},
			{ID: primitive.NewObjectID(), AuthorID: author},
			{ID: primitive.NewObjectID(), AuthorID: author},
		}

		sim.Simulate(ctx, []blogmodels.User{agent}, posts, 2)

		liked := 0
		for _, post := range posts {
			liked += len(store.likes[post.ID])
		}
		assert.Equal(t, 2, liked)
	})
}

// TestDrawActionDistribution kiểm tra trọng số 0 loại bỏ hẳn một loại tương tác
func TestDrawActionDistribution(t *testing.T) {
	t.Run("✅ Trọng số chỉ có Like thì luôn rút ra like", func(t *testing.T) {
		sim := NewInteractionSimulator(newMemoryStore(), InteractionWeights{Like: 1})
		for i := 0; i < 100; i++ {
			assert.Equal(t, ActionLike, sim.drawAction())
		}
	})

	t.Run("✅ Trọng số toàn 0 rơi về phân phối uniform", func(t *testing.T) {
		sim := NewInteractionSimulator(newMemoryStore(), InteractionWeights{})
		seen := map[string]bool{}
		for i := 0; i < 300; i++ {
			seen[sim.drawAction()] = true
		}
		assert.Len(t, seen, 3)
	})
}
