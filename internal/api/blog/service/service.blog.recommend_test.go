package blogsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
)

func postsForAuthor(author primitive.ObjectID, count int, likesEach int, category string, lastPostAge time.Duration, now time.Time) []blogmodels.Post {
	posts := make([]blogmodels.Post, 0, count)
	for i := 0; i < count; i++ {
		likes := make([]string, likesEach)
		for j := range likes {
			likes[j] = primitive.NewObjectID().Hex()
		}
		posts = append(posts, blogmodels.Post{
			ID:        primitive.NewObjectID(),
			AuthorID:  author,
			Category:  category,
			Likes:     likes,
			Comments:  2,
			Views:     50,
			CreatedAt: now.Add(-lastPostAge - time.Duration(i)*24*time.Hour).UnixMilli(),
		})
	}
	return posts
}

// TestRankAuthors kiểm tra chấm điểm và xếp hạng gợi ý tác giả
func TestRankAuthors(t *testing.T) {
	now := time.Now()

	t.Run("✅ Tác giả tương tác cao đứng trước tác giả tương tác thấp", func(t *testing.T) {
		strong := primitive.NewObjectID()
		weak := primitive.NewObjectID()

		var posts []blogmodels.Post
		posts = append(posts, postsForAuthor(strong, 5, 20, "Teknoloji", 24*time.Hour, now)...)
		posts = append(posts, postsForAuthor(weak, 5, 1, "Seyahat", 24*time.Hour, now)...)

		ranked := RankAuthors(posts, nil, nil, now, 5)
		require.NotEmpty(t, ranked)
		assert.Equal(t, strong.Hex(), ranked[0].AuthorID)
	})

	t.Run("✅ Người xem và người đã follow bị loại khỏi gợi ý", func(t *testing.T) {
		followed := primitive.NewObjectID()
		other := primitive.NewObjectID()

		var posts []blogmodels.Post
		posts = append(posts, postsForAuthor(followed, 5, 20, "Teknoloji", 24*time.Hour, now)...)
		posts = append(posts, postsForAuthor(other, 5, 20, "Sanat", 24*time.Hour, now)...)

		ranked := RankAuthors(posts, nil, []string{followed.Hex()}, now, 5)
		for _, author := range ranked {
			assert.NotEqual(t, followed.Hex(), author.AuthorID)
		}
		require.Len(t, ranked, 1)
		assert.Equal(t, other.Hex(), ranked[0].AuthorID)
	})

	t.Run("✅ Sở thích trùng danh mục tăng điểm tác giả", func(t *testing.T) {
		techAuthor := primitive.NewObjectID()
		artAuthor := primitive.NewObjectID()

		var posts []blogmodels.Post
		posts = append(posts, postsForAuthor(techAuthor, 4, 5, "Teknoloji", 24*time.Hour, now)...)
		posts = append(posts, postsForAuthor(artAuthor, 4, 5, "Sanat", 24*time.Hour, now)...)

		neutral := RankAuthors(posts, nil, nil, now, 5)
		biased := RankAuthors(posts, []string{"teknoloji"}, nil, now, 5)

		var neutralScore, biasedScore float64
		for _, a := range neutral {
			if a.AuthorID == techAuthor.Hex() {
				neutralScore = a.Score
			}
		}
		for _, a := range biased {
			if a.AuthorID == techAuthor.Hex() {
				biasedScore = a.Score
			}
		}
		assert.Greater(t, biasedScore, neutralScore)
	})

	t.Run("✅ Tác giả mới (ít bài) nhận bonus hỗ trợ", func(t *testing.T) {
		newcomer := primitive.NewObjectID()
		posts := postsForAuthor(newcomer, 2, 10, "Müzik", 24*time.Hour, now)

		ranked := RankAuthors(posts, nil, nil, now, 5)
		require.Len(t, ranked, 1)
		assert.Positive(t, ranked[0].Score)
		assert.Equal(t, 2, ranked[0].PostCount)
	})

	t.Run("✅ Tác giả điểm dưới ngưỡng bị loại khỏi kết quả", func(t *testing.T) {
		ranked := trimRanking([]RecommendedAuthor{
			{AuthorID: "quiet", Score: 8},
			{AuthorID: "strong", Score: 40},
			{AuthorID: "edge", Score: minAuthorScore}, // đúng ngưỡng cũng bị loại
		}, 5)

		require.Len(t, ranked, 1)
		assert.Equal(t, "strong", ranked[0].AuthorID)
	})

	t.Run("✅ RankAuthors không bao giờ trả về điểm dưới ngưỡng", func(t *testing.T) {
		quiet := primitive.NewObjectID()
		// Một bài cũ hơn một năm, không tương tác: điểm thấp nhất có thể
		// (năng suất 5 + bonus tác giả mới 20) vẫn phải trên ngưỡng
		posts := []blogmodels.Post{{
			ID:        primitive.NewObjectID(),
			AuthorID:  quiet,
			CreatedAt: now.Add(-400 * 24 * time.Hour).UnixMilli(),
		}}

		ranked := RankAuthors(posts, nil, nil, now, 5)
		require.NotEmpty(t, ranked)
		for _, a := range ranked {
			assert.Greater(t, a.Score, float64(minAuthorScore))
		}
	})

	t.Run("✅ Kết quả cắt theo limit và thứ tự ổn định", func(t *testing.T) {
		var posts []blogmodels.Post
		for i := 0; i < 8; i++ {
			posts = append(posts, postsForAuthor(primitive.NewObjectID(), 3, 10, "Teknoloji", 24*time.Hour, now)...)
		}

		first := RankAuthors(posts, nil, nil, now, 3)
		second := RankAuthors(posts, nil, nil, now, 3)
		require.Len(t, first, 3)
		assert.Equal(t, first, second)
	})
}
