package blogsvc

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
)

// Gợi ý tác giả: chấm điểm các tác giả dựa trên chất lượng nội dung, độ hoạt động,
// độ phủ danh mục và mức trùng khớp với sở thích của người xem.

// RecommendedAuthor là một tác giả được gợi ý kèm điểm số và thống kê tổng hợp
type RecommendedAuthor struct {
	AuthorID      string   `json:"authorId"`
	Score         float64  `json:"score"`
	AvgEngagement float64  `json:"avgEngagement"`
	PostCount     int      `json:"postCount"`
	Categories    []string `json:"categories"`
	Author        *blogmodels.User `json:"author,omitempty"`
}

// authorStats gom thống kê của một tác giả từ các bài viết của họ
type authorStats struct {
	id            string
	postCount     int
	totalLikes    float64
	totalComments float64
	totalViews    float64
	categories    map[string]bool
	lastPostAt    int64
}

// RankAuthors chấm điểm và xếp hạng các tác giả từ danh sách bài viết.
// Những author id trong exclude (người xem và những người họ đã follow) bị bỏ qua.
// Tác giả điểm dưới ngưỡng 10 bị loại. Điểm bằng nhau thì tác giả có avgEngagement
// cao hơn đứng trước, vẫn bằng thì so sánh id để thứ tự ổn định.
func RankAuthors(posts []blogmodels.Post, viewerInterests []string, exclude []string, now time.Time, limit int) []RecommendedAuthor {
	if limit <= 0 {
		limit = 5
	}

	excluded := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	// Gom thống kê theo tác giả
	stats := make(map[string]*authorStats)
	for _, post := range posts {
		if post.AuthorID.IsZero() {
			continue
		}
		id := post.AuthorID.Hex()
		if excluded[id] {
			continue
		}

		st, ok := stats[id]
		if !ok {
			st = &authorStats{id: id, categories: make(map[string]bool)}
			stats[id] = st
		}

		st.postCount++
		st.totalLikes += float64(len(post.Likes))
		st.totalComments += float64(post.Comments)
		st.totalViews += float64(post.Views)
		if post.Category != "" {
			st.categories[post.Category] = true
		}
		if post.CreatedAt > st.lastPostAt {
			st.lastPostAt = post.CreatedAt
		}
	}

	// Chấm điểm từng tác giả
	ranked := make([]RecommendedAuthor, 0, len(stats))
	for _, st := range stats {
		n := float64(st.postCount)
		avgLikes := st.totalLikes / n
		avgComments := st.totalComments / n
		avgViews := st.totalViews / n

		var score float64

		// 1. Chất lượng nội dung (tương tác trung bình trên mỗi bài)
		engagementScore := avgLikes*2 + avgComments*3 + avgViews*0.1
		score += engagementScore * 10

		// 2. Độ hoạt động: bài gần nhất trong 30 ngày thì được bonus
		if st.lastPostAt > 0 {
			daysSinceLastPost := now.Sub(time.UnixMilli(st.lastPostAt)).Hours() / 24
			activityScore := math.Max(0, 30-daysSinceLastPost) / 30
			score += activityScore * 50
		}

		// 3. Năng suất: tối đa 10 bài được tính bonus
		score += math.Min(n, 10) * 5

		// 4. Mức trùng khớp sở thích của người xem với danh mục của tác giả
		if len(viewerInterests) > 0 {
			common := 0
			for _, interest := range viewerInterests {
				li := strings.ToLower(interest)
				for category := range st.categories {
					lc := strings.ToLower(category)
					if strings.Contains(lc, li) || strings.Contains(li, lc) {
						common++
						break
					}
				}
			}
			score += float64(common) / float64(len(viewerInterests)) * 100
		}

		// 5. Độ phủ danh mục: tối đa 3 danh mục được tính bonus
		score += math.Min(float64(len(st.categories)), 3) * 10

		// 6. Hỗ trợ tác giả mới (ít bài)
		if st.postCount <= 3 {
			score += 20
		}

		categories := make([]string, 0, len(st.categories))
		for category := range st.categories {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		ranked = append(ranked, RecommendedAuthor{
			AuthorID:      st.id,
			Score:         math.Round(score),
			AvgEngagement: math.Round((avgLikes+avgComments)*10) / 10,
			PostCount:     st.postCount,
			Categories:    categories,
		})
	}

	return trimRanking(ranked, limit)
}

// minAuthorScore là ngưỡng điểm tối thiểu để một tác giả được gợi ý.
// Với bảng điểm hiện tại mọi tác giả có ít nhất một bài đều đạt trên
// ngưỡng (năng suất ≥ 5 cộng bonus tác giả mới 20, hoặc năng suất ≥ 20),
// ngưỡng chỉ siết khi các trọng số thay đổi.
const minAuthorScore = 10

// trimRanking loại tác giả dưới ngưỡng điểm, sắp xếp theo điểm giảm dần
// (tie-break: avgEngagement rồi id) và cắt theo limit.
func trimRanking(ranked []RecommendedAuthor, limit int) []RecommendedAuthor {
	filtered := ranked[:0]
	for _, author := range ranked {
		if author.Score > minAuthorScore {
			filtered = append(filtered, author)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Score != filtered[j].Score {
			return filtered[i].Score > filtered[j].Score
		}
		if filtered[i].AvgEngagement != filtered[j].AvgEngagement {
			return filtered[i].AvgEngagement > filtered[j].AvgEngagement
		}
		return filtered[i].AuthorID < filtered[j].AuthorID
	})

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

// RecommendedAuthors tính danh sách tác giả gợi ý cho một người xem.
// Nếu viewer rỗng (khách vãng lai) thì không loại trừ ai và không tính điểm sở thích.
func (s *UserService) RecommendedAuthors(ctx context.Context, postService *PostService, viewerID string, limit int) ([]RecommendedAuthor, error) {
	var viewerInterests []string
	exclude := []string{}

	if viewerID != "" {
		viewer, err := s.FindOne(ctx, map[string]interface{}{"_id": mustObjectID(viewerID)}, nil)
		if err == nil {
			viewerInterests = viewer.Interests
			exclude = append(exclude, viewerID)
			exclude = append(exclude, viewer.Following...)
		}
	}

	// Sample bài viết trong 90 ngày gần nhất là đủ đại diện cho mức hoạt động
	posts, err := postService.RecentPosts(ctx, 90, 500)
	if err != nil {
		return nil, err
	}

	ranked := RankAuthors(posts, viewerInterests, exclude, time.Now(), limit)

	// Hydrate thông tin tác giả cho response
	for i := range ranked {
		author, err := s.FindOneById(ctx, mustObjectID(ranked[i].AuthorID))
		if err == nil {
			ranked[i].Author = &author
		}
	}

	return ranked, nil
}
