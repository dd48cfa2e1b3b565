package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sadikkartall/cetereleceweb/config"
	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
)

type fakeAgentManager struct {
	mu        sync.Mutex
	agents    []blogmodels.User
	created   int
	createErr error
	listErr   error
}

func (f *fakeAgentManager) CreateAgent(ctx context.Context) (blogmodels.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return blogmodels.User{}, f.createErr
	}
	agent := blogmodels.User{ID: primitive.NewObjectID(), IsAgent: true}
	f.agents = append(f.agents, agent)
	f.created++
	return agent, nil
}

func (f *fakeAgentManager) ListAgents(ctx context.Context) ([]blogmodels.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.agents, nil
}

func (f *fakeAgentManager) PickTopic(agent *blogmodels.User) string {
	return "Yapay Zeka"
}

type fakePublisher struct {
	mu      sync.Mutex
	calls   []primitive.ObjectID
	failFor map[primitive.ObjectID]bool
}

func (f *fakePublisher) GenerateAndPublish(ctx context.Context, authorID primitive.ObjectID, category string) (blogmodels.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[authorID] {
		return blogmodels.Post{}, errors.New("llm unavailable")
	}
	f.calls = append(f.calls, authorID)
	return blogmodels.Post{ID: primitive.NewObjectID(), AuthorID: authorID, Category: category}, nil
}

type fakePostSource struct {
	mu    sync.Mutex
	posts []blogmodels.Post
	err   error
	days  int
}

func (f *fakePostSource) RecentPosts(ctx context.Context, windowDays int, sampleLimit int64) ([]blogmodels.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.days = windowDays
	return f.posts, f.err
}

type fakeSimulator struct {
	mu            sync.Mutex
	runs          int
	agents        int
	posts         int
	postsPerAgent int
}

func (f *fakeSimulator) Simulate(ctx context.Context, agents []blogmodels.User, posts []blogmodels.Post, postsPerAgent int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs++
	f.agents = len(agents)
	f.posts = len(posts)
	f.postsPerAgent = postsPerAgent
}

func newTestOrchestrator(agents *fakeAgentManager, publisher *fakePublisher, posts *fakePostSource, sim *fakeSimulator) *AgentOrchestrator {
	cfg := &config.Configuration{
		Orchestrator_TickSec:        60,
		Orchestrator_WriteChance:    1.0,
		Orchestrator_RecentPostDays: 7,
		Orchestrator_PostsPerAgent:  3,
	}
	return NewAgentOrchestrator(cfg, agents, publisher, posts, sim)
}

func TestOrchestratorJobs(t *testing.T) {
	t.Run("✅ Đăng ký đủ ba job với chu kỳ đúng", func(t *testing.T) {
		o := newTestOrchestrator(&fakeAgentManager{}, &fakePublisher{}, &fakePostSource{}, &fakeSimulator{})

		require.Len(t, o.jobs, 3)

		byName := map[string]Schedule{}
		for _, job := range o.jobs {
			byName[job.schedule.Name] = job.schedule
		}

		assert.Equal(t, PeriodWeekly, byName[JobAgentCreation].Period)
		assert.Equal(t, 3, byName[JobAgentCreation].Count)
		assert.Equal(t, PeriodDaily, byName[JobContentGeneration].Period)
		assert.Equal(t, 1, byName[JobContentGeneration].Count)
		assert.Equal(t, PeriodDaily, byName[JobInteractionSimulation].Period)
		assert.Equal(t, 5, byName[JobInteractionSimulation].Count)
	})

	t.Run("✅ Config không hợp lệ rơi về giá trị mặc định", func(t *testing.T) {
		cfg := &config.Configuration{Orchestrator_TickSec: -1, Orchestrator_WriteChance: 2.5, Orchestrator_RecentPostDays: 0}
		o := NewAgentOrchestrator(cfg, &fakeAgentManager{}, &fakePublisher{}, &fakePostSource{}, &fakeSimulator{})

		assert.Equal(t, 60*time.Second, o.tick)
		assert.Equal(t, 0.7, o.writeChance)
		assert.Equal(t, 7, o.recentDays)
		assert.Equal(t, 3, o.postsPerAgent)
	})
}

func TestRunAgentCreation(t *testing.T) {
	t.Run("✅ Tạo một agent mỗi lần kích hoạt", func(t *testing.T) {
		agents := &fakeAgentManager{}
		o := newTestOrchestrator(agents, &fakePublisher{}, &fakePostSource{}, &fakeSimulator{})

		o.runAgentCreation(context.Background())
		o.runAgentCreation(context.Background())

		assert.Equal(t, 2, agents.created)
	})

	t.Run("✅ Lỗi tạo agent không panic", func(t *testing.T) {
		agents := &fakeAgentManager{createErr: errors.New("mongo down")}
		o := newTestOrchestrator(agents, &fakePublisher{}, &fakePostSource{}, &fakeSimulator{})

		assert.NotPanics(t, func() {
			o.runAgentCreation(context.Background())
		})
	})
}

func TestRunContentGeneration(t *testing.T) {
	t.Run("✅ WriteChance 1.0 cho mọi agent viết bài", func(t *testing.T) {
		agents := &fakeAgentManager{agents: []blogmodels.User{
			{ID: primitive.NewObjectID()},
			{ID: primitive.NewObjectID()},
			{ID: primitive.NewObjectID()},
		}}
		publisher := &fakePublisher{}
		o := newTestOrchestrator(agents, publisher, &fakePostSource{}, &fakeSimulator{})

		o.runContentGeneration(context.Background())

		assert.Len(t, publisher.calls, 3)
	})

	t.Run("✅ Một agent lỗi không chặn các agent còn lại", func(t *testing.T) {
		broken := blogmodels.User{ID: primitive.NewObjectID()}
		healthy := blogmodels.User{ID: primitive.NewObjectID()}
		agents := &fakeAgentManager{agents: []blogmodels.User{broken, healthy}}
		publisher := &fakePublisher{failFor: map[primitive.ObjectID]bool{broken.ID: true}}
		o := newTestOrchestrator(agents, publisher, &fakePostSource{}, &fakeSimulator{})

		o.runContentGeneration(context.Background())

		require.Len(t, publisher.calls, 1)
		assert.Equal(t, healthy.ID, publisher.calls[0])
	})

	t.Run("✅ Không có agent thì bỏ qua", func(t *testing.T) {
		publisher := &fakePublisher{}
		o := newTestOrchestrator(&fakeAgentManager{}, publisher, &fakePostSource{}, &fakeSimulator{})

		o.runContentGeneration(context.Background())

		assert.Empty(t, publisher.calls)
	})
}

func TestRunInteractionSimulation(t *testing.T) {
	t.Run("✅ Chạy mô phỏng trên bài viết gần đây", func(t *testing.T) {
		agents := &fakeAgentManager{agents: []blogmodels.User{
			{ID: primitive.NewObjectID()},
			{ID: primitive.NewObjectID()},
		}}
		posts := &fakePostSource{posts: []blogmodels.Post{{ID: primitive.NewObjectID()}}}
		sim := &fakeSimulator{}
		o := newTestOrchestrator(agents, &fakePublisher{}, posts, sim)

		o.runInteractionSimulation(context.Background())

		assert.Equal(t, 1, sim.runs)
		assert.Equal(t, 7, posts.days)
		assert.Equal(t, 1, sim.posts)
		assert.Equal(t, 3, sim.postsPerAgent)
		assert.GreaterOrEqual(t, sim.agents, 1)
	})

	t.Run("✅ Không có bài viết gần đây thì bỏ qua", func(t *testing.T) {
		agents := &fakeAgentManager{agents: []blogmodels.User{{ID: primitive.NewObjectID()}}}
		sim := &fakeSimulator{}
		o := newTestOrchestrator(agents, &fakePublisher{}, &fakePostSource{}, sim)

		o.runInteractionSimulation(context.Background())

		assert.Equal(t, 0, sim.runs)
	})

	t.Run("✅ Lỗi truy vấn bài viết không panic", func(t *testing.T) {
		agents := &fakeAgentManager{agents: []blogmodels.User{{ID: primitive.NewObjectID()}}}
		posts := &fakePostSource{err: errors.New("mongo down")}
		sim := &fakeSimulator{}
		o := newTestOrchestrator(agents, &fakePublisher{}, posts, sim)

		assert.NotPanics(t, func() {
			o.runInteractionSimulation(context.Background())
		})
		assert.Equal(t, 0, sim.runs)
	})
}

func TestRunDue(t *testing.T) {
	t.Run("✅ Job có instant trong khoảng được kích hoạt", func(t *testing.T) {
		agents := &fakeAgentManager{}
		o := newTestOrchestrator(agents, &fakePublisher{}, &fakePostSource{}, &fakeSimulator{})

		// Chỉ giữ lại job tạo agent với instant đã biết trước
		s := Schedule{Name: JobAgentCreation, Period: PeriodDaily, Count: 1}
		done := make(chan struct{})
		o.jobs = []scheduledJob{{s, func(ctx context.Context) {
			o.runAgentCreation(ctx)
			close(done)
		}}}

		day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		at := day.Add(time.Duration(s.InstantsFor(s.periodKey(day))[0]) * time.Minute)

		o.runDue(context.Background(), at.Add(-time.Minute), at)

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("job không được kích hoạt")
		}
		assert.Equal(t, 1, agents.created)
	})

	t.Run("✅ Job sinh nội dung và mô phỏng trùng phút chạy song song an toàn", func(t *testing.T) {
		agents := &fakeAgentManager{agents: []blogmodels.User{
			{ID: primitive.NewObjectID()},
			{ID: primitive.NewObjectID()},
		}}
		publisher := &fakePublisher{}
		posts := &fakePostSource{posts: []blogmodels.Post{{ID: primitive.NewObjectID()}}}
		sim := &fakeSimulator{}
		o := newTestOrchestrator(agents, publisher, posts, sim)

		// Instant của hai job daily có thể rơi vào cùng một phút, khi đó
		// runDue chạy cả hai handler đồng thời trong các goroutine riêng
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				o.runContentGeneration(context.Background())
			}()
			go func() {
				defer wg.Done()
				o.runInteractionSimulation(context.Background())
			}()
		}
		wg.Wait()

		// WriteChance 1.0: mỗi lượt sinh nội dung đăng bài cho cả 2 agents
		assert.Len(t, publisher.calls, 100)
		assert.Equal(t, 50, sim.runs)
	})

	t.Run("✅ Handler panic không lan ra scheduler", func(t *testing.T) {
		o := newTestOrchestrator(&fakeAgentManager{}, &fakePublisher{}, &fakePostSource{}, &fakeSimulator{})

		s := Schedule{Name: "panicking_job", Period: PeriodDaily, Count: 1}
		fired := make(chan struct{})
		o.jobs = []scheduledJob{{s, func(ctx context.Context) {
			close(fired)
			panic("boom")
		}}}

		day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		at := day.Add(time.Duration(s.InstantsFor(s.periodKey(day))[0]) * time.Minute)

		assert.NotPanics(t, func() {
			o.runDue(context.Background(), at.Add(-time.Minute), at)
		})

		select {
		case <-fired:
		case <-time.After(2 * time.Second):
			t.Fatal("job không được kích hoạt")
		}
		// Cho goroutine recover chạy xong
		time.Sleep(50 * time.Millisecond)
	})
}
