package blogsvc

import (
	"context"
	"math"
	"sort"
	"time"

	blogmodels "github.com/sadikkartall/cetereleceweb/internal/api/blog/models"
)

// Trending feed: chấm điểm các bài viết gần đây theo mức tương tác có suy giảm
// theo tuổi bài, rồi xếp hạng. Điểm chỉ tính lúc đọc, không lưu xuống database.

// ComputeTrendScore tính điểm trend của một bài viết tại thời điểm now.
// Bài có tổng tương tác cơ bản dưới 2 bị coi là nhiễu và nhận điểm 0.
func ComputeTrendScore(post *blogmodels.Post, now time.Time) float64 {
	likes := float64(len(post.Likes))
	comments := float64(post.Comments)
	bookmarks := float64(len(post.Bookmarks))

	// Tối thiểu 1 để tránh chia cho 0
	views := float64(post.Views)
	if views < 1 {
		views = 1
	}

	// Tuổi bài tính theo giờ, tối thiểu 1
	ageInHours := now.Sub(time.UnixMilli(post.CreatedAt)).Hours()
	if ageInHours < 1 {
		ageInHours = 1
	}

	// Điểm tương tác cơ bản
	baseEngagement := likes*1.0 + comments*2.0 + bookmarks*1.5

	// Lọc spam/chất lượng thấp: dưới 2 tương tác thì không thể trend
	if baseEngagement < 2 {
		return 0
	}

	engagementRate := baseEngagement / views

	// Bonus cho bài nhận tương tác trong 24 giờ gần nhất
	recentEngagementBonus := 1.0
	if ageInHours <= 24 {
		recentEngagementBonus = 1.2
	}

	score := (baseEngagement*10 + engagementRate*50 + views*0.1) * timeFactor(ageInHours) * recentEngagementBonus

	// Làm tròn 2 chữ số thập phân
	return math.Round(score*100) / 100
}

// timeFactor trả về hệ số thời gian theo tuổi bài (giờ). Liên tục tại các mốc
// 24h và 168h: bài mới được ưu tiên, bài cũ suy giảm dần với sàn 0.1.
func timeFactor(ageInHours float64) float64 {
	switch {
	case ageInHours <= 24:
		// 24 giờ đầu: giảm dần từ 2.0 về 1.5
		return 2.0 - (ageInHours/24)*0.5
	case ageInHours <= 168:
		// Từ 1 đến 7 ngày: giảm dần từ 1.5 về 0.7
		return 1.5 - ((ageInHours-24)/144)*0.8
	default:
		// Quá 7 ngày: exponential decay
		return math.Max(0.1, 0.7*math.Exp(-(ageInHours-168)/500))
	}
}

// RankTrending chấm điểm và xếp hạng danh sách bài viết, trả về tối đa limit bài.
// Bài điểm 0 bị loại. Điểm bằng nhau thì bài mới hơn đứng trước, vẫn bằng thì
// so sánh id tăng dần để thứ tự ổn định giữa các lần gọi.
func RankTrending(posts []blogmodels.Post, now time.Time, limit int) []blogmodels.Post {
	if limit <= 0 {
		limit = 5
	}

	scored := make([]blogmodels.Post, 0, len(posts))
	for _, post := range posts {
		post.TrendScore = ComputeTrendScore(&post, now)
		if post.TrendScore > 0 {
			scored = append(scored, post)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].TrendScore != scored[j].TrendScore {
			return scored[i].TrendScore > scored[j].TrendScore
		}
		if scored[i].CreatedAt != scored[j].CreatedAt {
			return scored[i].CreatedAt > scored[j].CreatedAt
		}
		return scored[i].ID.Hex() < scored[j].ID.Hex()
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// TrendingPosts lấy các bài viết trong cửa sổ windowDays gần nhất rồi xếp hạng trend.
func (s *PostService) TrendingPosts(ctx context.Context, limit int, windowDays int) ([]blogmodels.Post, error) {
	recent, err := s.RecentPosts(ctx, windowDays, 50)
	if err != nil {
		return nil, err
	}
	return RankTrending(recent, time.Now(), limit), nil
}
