// Package agentsvc chứa logic tạo và vận hành các agent tự động:
// sinh hồ sơ agent từ persona taxonomy và mô phỏng tương tác với nội dung.
package agentsvc

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	agentmodels "github.com/sadikkartall/cetereleceweb/internal/api/agent/models"
	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
	"github.com/sadikkartall/cetereleceweb/internal/logger"
	"github.com/sadikkartall/cetereleceweb/internal/utility"
)

// AgentStore là phần của UserService mà AgentService cần
type AgentStore interface {
	InsertOne(ctx context.Context, user blogmodels.User) (blogmodels.User, error)
	FindAgents(ctx context.Context) ([]blogmodels.User, error)
}

// AgentService tạo mới các agent tự động từ persona taxonomy
type AgentService struct {
	store AgentStore
	rng   *rand.Rand
}

// NewAgentService tạo mới AgentService
func NewAgentService(store AgentStore) *AgentService {
	return &AgentService{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// newAgentProfile sinh hồ sơ agent cho một persona: tên giả, email, avatar,
// bio chọn ngẫu nhiên từ persona, uid mới để phân biệt với user thật.
func (s *AgentService) newAgentProfile(persona agentmodels.Persona) blogmodels.User {
	firstName := gofakeit.FirstName()
	lastName := gofakeit.LastName()

	return blogmodels.User{
		UID:         uuid.NewString(),
		DisplayName: fmt.Sprintf("%s %s", firstName, lastName),
		Email:       strings.ToLower(fmt.Sprintf("%s.%s@%s", firstName, lastName, gofakeit.DomainName())),
		PhotoURL:    gofakeit.ImageURL(256, 256),
		Bio:         utility.PickOne(s.rng, persona.Bios),
		IsAgent:     true,
		PersonaType: persona.Type,
		Interests:   persona.Interests,
		Following:   []string{},
		Followers:   []string{},
	}
}

// CreateAgent tạo một agent mới với persona ngẫu nhiên và persist
func (s *AgentService) CreateAgent(ctx context.Context) (blogmodels.User, error) {
	personaType := utility.PickOne(s.rng, agentmodels.PersonaTypes)
	persona := agentmodels.Personas[personaType]

	agent, err := s.store.InsertOne(ctx, s.newAgentProfile(persona))
	if err != nil {
		return blogmodels.User{}, err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"agentId": agent.ID.Hex(),
		"persona": personaType,
	}).Info("🤖 [AGENT_CREATE] Đã tạo agent mới")

	return agent, nil
}

// PickTopic chọn một chủ đề viết bài cho agent: ưu tiên sở thích của persona,
// không có thì rơi về danh mục nội dung chung.
func (s *AgentService) PickTopic(agent *blogmodels.User) string {
	if len(agent.Interests) > 0 {
		return utility.PickOne(s.rng, agent.Interests)
	}
	return utility.PickOne(s.rng, agentmodels.ContentCategories)
}

// ListAgents trả về tất cả agents hiện có
func (s *AgentService) ListAgents(ctx context.Context) ([]blogmodels.User, error) {
	return s.store.FindAgents(ctx)
}
