package agentsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	agentmodels "github.com/sadikkartall/cetereleceweb/internal/api/agent/models"
	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
	"github.com/sadikkartall/cetereleceweb/internal/utility"
)

// fakeAgentStore lưu agents trong bộ nhớ
type fakeAgentStore struct {
	agents []blogmodels.User
}

func (f *fakeAgentStore) InsertOne(ctx context.Context, user blogmodels.User) (blogmodels.User, error) {
	user.ID = primitive.NewObjectID()
	f.agents = append(f.agents, user)
	return user, nil
}

func (f *fakeAgentStore) FindAgents(ctx context.Context) ([]blogmodels.User, error) {
	return f.agents, nil
}

// TestCreateAgent kiểm tra sinh hồ sơ agent từ persona taxonomy
func TestCreateAgent(t *testing.T) {
	ctx := context.Background()

	t.Run("✅ Agent mới có đầy đủ hồ sơ và persona hợp lệ", func(t *testing.T) {
		store := &fakeAgentStore{}
		svc := NewAgentService(store)

		agent, err := svc.CreateAgent(ctx)
		require.NoError(t, err)

		assert.True(t, agent.IsAgent)
		assert.NotEmpty(t, agent.UID)
		assert.NotEmpty(t, agent.DisplayName)
		assert.NotEmpty(t, agent.Email)
		assert.NotEmpty(t, agent.Bio)
		assert.NotEmpty(t, agent.Interests)
		assert.True(t, utility.Contains(agentmodels.PersonaTypes, agent.PersonaType))

		// Bio và interests phải khớp với persona được chọn
		persona := agentmodels.Personas[agent.PersonaType]
		assert.True(t, utility.Contains(persona.Bios, agent.Bio))
		assert.Equal(t, persona.Interests, agent.Interests)
	})

	t.Run("✅ Các agent khác nhau có UID khác nhau", func(t *testing.T) {
		store := &fakeAgentStore{}
		svc := NewAgentService(store)

		first, err := svc.CreateAgent(ctx)
		require.NoError(t, err)
		second, err := svc.CreateAgent(ctx)
		require.NoError(t, err)

		assert.NotEqual(t, first.UID, second.UID)
		agents, _ := svc.ListAgents(ctx)
		assert.Len(t, agents, 2)
	})
}

// TestPickTopic kiểm tra chọn chủ đề viết bài
func TestPickTopic(t *testing.T) {
	svc := NewAgentService(&fakeAgentStore{})

	t.Run("✅ Ưu tiên sở thích của agent", func(t *testing.T) {
		agent := blogmodels.User{Interests: []string{"Yapay Zeka", "Blockchain"}}
		for i := 0; i < 20; i++ {
			assert.True(t, utility.Contains(agent.Interests, svc.PickTopic(&agent)))
		}
	})

	t.Run("✅ Không có sở thích thì rơi về danh mục chung", func(t *testing.T) {
		agent := blogmodels.User{}
		topic := svc.PickTopic(&agent)
		assert.True(t, utility.Contains(agentmodels.ContentCategories, topic))
	})
}

// TestPersonaTaxonomy kiểm tra taxonomy đầy đủ và tự nhất quán
func TestPersonaTaxonomy(t *testing.T) {
	t.Run("✅ Đủ 8 persona, mỗi persona có bio và interests", func(t *testing.T) {
		assert.Len(t, agentmodels.PersonaTypes, 8)
		for _, personaType := range agentmodels.PersonaTypes {
			persona, ok := agentmodels.Personas[personaType]
			require.True(t, ok, "persona %s thiếu trong taxonomy", personaType)
			assert.Equal(t, personaType, persona.Type)
			assert.NotEmpty(t, persona.Bios)
			assert.NotEmpty(t, persona.Interests)
		}
	})
}
