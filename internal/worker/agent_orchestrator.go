// Package worker chứa các background worker chạy theo chu kỳ.
package worker

import (
	"context"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sadikkartall/cetereleceweb/config"
	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
	"github.com/sadikkartall/cetereleceweb/internal/logger"
	"github.com/sadikkartall/cetereleceweb/internal/utility"
)

// Tên các job của orchestrator
const (
	JobAgentCreation         = "agent_creation"
	JobContentGeneration     = "content_generation"
	JobInteractionSimulation = "interaction_simulation"
)

// AgentManager là phần của AgentService mà orchestrator cần
type AgentManager interface {
	CreateAgent(ctx context.Context) (blogmodels.User, error)
	ListAgents(ctx context.Context) ([]blogmodels.User, error)
	PickTopic(agent *blogmodels.User) string
}

// ArticlePublisher sinh và đăng một bài viết cho agent
type ArticlePublisher interface {
	GenerateAndPublish(ctx context.Context, authorID primitive.ObjectID, category string) (blogmodels.Post, error)
}

// PostSource cấp các bài viết gần đây cho job mô phỏng tương tác
type PostSource interface {
	RecentPosts(ctx context.Context, windowDays int, sampleLimit int64) ([]blogmodels.Post, error)
}

// InteractionRunner chạy một lượt mô phỏng tương tác
type InteractionRunner interface {
	Simulate(ctx context.Context, agents []blogmodels.User, posts []blogmodels.Post, postsPerAgent int)
}

// scheduledJob ghép một Schedule với handler của nó
type scheduledJob struct {
	schedule Schedule
	handler  func(ctx context.Context)
}

// AgentOrchestrator điều phối vòng đời agent: tạo agent theo tuần,
// sinh nội dung và mô phỏng tương tác theo ngày. Mỗi job chạy tại các
// instant ngẫu nhiên nhưng ổn định trong chu kỳ của nó (xem Schedule).
type AgentOrchestrator struct {
	agents        AgentManager
	publisher     ArticlePublisher
	posts         PostSource
	simulator     InteractionRunner
	tick          time.Duration
	writeChance   float64
	recentDays    int
	postsPerAgent int
	jobs          []scheduledJob
	now           func() time.Time
}

// NewAgentOrchestrator tạo mới AgentOrchestrator từ config
func NewAgentOrchestrator(
	cfg *config.Configuration,
	agents AgentManager,
	publisher ArticlePublisher,
	posts PostSource,
	simulator InteractionRunner,
) *AgentOrchestrator {
	tickSec := cfg.Orchestrator_TickSec
	if tickSec <= 0 {
		tickSec = 60
	}
	writeChance := cfg.Orchestrator_WriteChance
	if writeChance <= 0 || writeChance > 1 {
		writeChance = 0.7
	}
	recentDays := cfg.Orchestrator_RecentPostDays
	if recentDays <= 0 {
		recentDays = 7
	}
	postsPerAgent := cfg.Orchestrator_PostsPerAgent
	if postsPerAgent <= 0 {
		postsPerAgent = 3
	}

	o := &AgentOrchestrator{
		agents:        agents,
		publisher:     publisher,
		posts:         posts,
		simulator:     simulator,
		tick:          time.Duration(tickSec) * time.Second,
		writeChance:   writeChance,
		recentDays:    recentDays,
		postsPerAgent: postsPerAgent,
		now:           time.Now,
	}

	o.jobs = []scheduledJob{
		{Schedule{Name: JobAgentCreation, Period: PeriodWeekly, Count: 3}, o.runAgentCreation},
		{Schedule{Name: JobContentGeneration, Period: PeriodDaily, Count: 1}, o.runContentGeneration},
		{Schedule{Name: JobInteractionSimulation, Period: PeriodDaily, Count: 5}, o.runInteractionSimulation},
	}

	return o
}

// Start chạy vòng lặp scheduler cho đến khi context bị hủy.
// Mỗi tick kiểm tra các mốc phút trong khoảng (lastTick, now] để
// không bỏ sót instant khi tick đến trễ.
func (o *AgentOrchestrator) Start(ctx context.Context) {
	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"tick":        o.tick.String(),
		"writeChance": o.writeChance,
		"recentDays":  o.recentDays,
	}).Info("🗓️ [ORCHESTRATOR] Starting Agent Orchestrator...")

	for _, job := range o.jobs {
		s := job.schedule
		log.WithFields(map[string]interface{}{
			"job":      s.Name,
			"period":   string(s.Period),
			"instants": s.InstantsFor(s.periodKey(o.now())),
		}).Info("🗓️ [ORCHESTRATOR] Đã đăng ký job")
	}

	ticker := time.NewTicker(o.tick)
	defer ticker.Stop()

	lastTick := o.now()
	for {
		select {
		case <-ctx.Done():
			log.Info("🗓️ [ORCHESTRATOR] Stopping Agent Orchestrator...")
			return
		case <-ticker.C:
			now := o.now()
			o.runDue(ctx, lastTick, now)
			lastTick = now
		}
	}
}

// runDue chạy tất cả các job có instant rơi trong khoảng (from, to].
// Handler chạy trong goroutine riêng với recover để một job lỗi
// không chặn tick hay các job khác.
func (o *AgentOrchestrator) runDue(ctx context.Context, from, to time.Time) {
	for _, job := range o.jobs {
		firings := job.schedule.FiringsBetween(from, to)
		for _, at := range firings {
			name := job.schedule.Name
			handler := job.handler

			logger.GetAppLogger().WithFields(map[string]interface{}{
				"job": name,
				"at":  at.Format(time.RFC3339),
			}).Info("🗓️ [ORCHESTRATOR] Kích hoạt job")

			go func() {
				defer func() {
					if r := recover(); r != nil {
						logger.GetAppLogger().WithFields(map[string]interface{}{
							"job":   name,
							"panic": r,
						}).Error("❌ [ORCHESTRATOR] Job panic, đã bỏ qua lượt chạy")
					}
				}()
				handler(ctx)
			}()
		}
	}
}

// runAgentCreation tạo một agent mới (job chạy 3 lần mỗi tuần)
func (o *AgentOrchestrator) runAgentCreation(ctx context.Context) {
	if _, err := o.agents.CreateAgent(ctx); err != nil {
		logger.GetAppLogger().WithError(err).Error("❌ [ORCHESTRATOR] Tạo agent thất bại")
	}
}

// runContentGeneration cho mỗi agent một cơ hội (writeChance) viết bài mới
func (o *AgentOrchestrator) runContentGeneration(ctx context.Context) {
	log := logger.GetAppLogger()

	agents, err := o.agents.ListAgents(ctx)
	if err != nil {
		log.WithError(err).Error("❌ [ORCHESTRATOR] Không lấy được danh sách agents")
		return
	}
	if len(agents) == 0 {
		log.Info("🗓️ [ORCHESTRATOR] Chưa có agent nào, bỏ qua lượt sinh nội dung")
		return
	}

	// Các lượt chạy có thể trùng phút với job khác nên mỗi lượt dùng
	// rng riêng, *rand.Rand không an toàn khi chia sẻ giữa các goroutine
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	published := 0
	for i := range agents {
		if rng.Float64() >= o.writeChance {
			continue
		}
		agent := &agents[i]
		topic := o.agents.PickTopic(agent)
		if _, err := o.publisher.GenerateAndPublish(ctx, agent.ID, topic); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"agentId": agent.ID.Hex(),
				"topic":   topic,
			}).Error("❌ [ORCHESTRATOR] Sinh bài viết thất bại")
			continue
		}
		published++
	}

	log.WithFields(map[string]interface{}{
		"agents":    len(agents),
		"published": published,
	}).Info("✍️ [ORCHESTRATOR] Hoàn tất lượt sinh nội dung")
}

// runInteractionSimulation chạy một lượt mô phỏng tương tác trên các
// bài viết gần đây
func (o *AgentOrchestrator) runInteractionSimulation(ctx context.Context) {
	log := logger.GetAppLogger()

	agents, err := o.agents.ListAgents(ctx)
	if err != nil {
		log.WithError(err).Error("❌ [ORCHESTRATOR] Không lấy được danh sách agents")
		return
	}
	if len(agents) == 0 {
		return
	}

	posts, err := o.posts.RecentPosts(ctx, o.recentDays, 50)
	if err != nil {
		log.WithError(err).Error("❌ [ORCHESTRATOR] Không lấy được bài viết gần đây")
		return
	}
	if len(posts) == 0 {
		log.Info("🗓️ [ORCHESTRATOR] Không có bài viết gần đây, bỏ qua lượt tương tác")
		return
	}

	// Mỗi lượt chỉ một nhóm agent ngẫu nhiên tham gia cho tự nhiên.
	// Rng cục bộ cho lượt chạy này, tránh chia sẻ state với lượt khác.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	batch := utility.Sample(rng, agents, (len(agents)+1)/2+1)
	o.simulator.Simulate(ctx, batch, posts, o.postsPerAgent)

	log.WithFields(map[string]interface{}{
		"agents": len(batch),
		"posts":  len(posts),
	}).Info("🤝 [ORCHESTRATOR] Hoàn tất lượt mô phỏng tương tác")
}
