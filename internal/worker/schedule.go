package worker

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"time"
)

// SchedulePeriod là chu kỳ lặp của một job
type SchedulePeriod string

const (
	PeriodWeekly SchedulePeriod = "weekly"
	PeriodDaily  SchedulePeriod = "daily"
)

// minutesPerDay và minutesPerWeek là độ dài chu kỳ tính theo phút
const (
	minutesPerDay  = 24 * 60
	minutesPerWeek = 7 * minutesPerDay
)

// Schedule mô tả lịch chạy của một job: Count instant ngẫu nhiên trong mỗi chu kỳ.
// Instants được suy ra từ PRNG seed bằng (tên job, khóa chu kỳ) nên:
//   - ổn định qua restart trong cùng một chu kỳ (không re-randomize mỗi lần chạy lại)
//   - tự đổi sang bộ instants mới khi sang chu kỳ mới, không cần state chia sẻ
type Schedule struct {
	Name   string         // Tên job, tham gia vào seed
	Period SchedulePeriod // weekly hoặc daily
	Count  int            // Số instant mỗi chu kỳ
}

// periodKey trả về khóa chu kỳ chứa thời điểm t:
// tuần ISO cho weekly ("2026-W35"), ngày cho daily ("2026-08-31").
func (s Schedule) periodKey(t time.Time) string {
	if s.Period == PeriodWeekly {
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	}
	return t.Format("2006-01-02")
}

// periodMinutes trả về độ dài chu kỳ tính theo phút
func (s Schedule) periodMinutes() int {
	if s.Period == PeriodWeekly {
		return minutesPerWeek
	}
	return minutesPerDay
}

// minuteOfPeriod trả về vị trí phút của t trong chu kỳ chứa nó.
// Tuần ISO bắt đầu từ thứ Hai.
func (s Schedule) minuteOfPeriod(t time.Time) int {
	minuteOfDay := t.Hour()*60 + t.Minute()
	if s.Period == PeriodDaily {
		return minuteOfDay
	}
	// Weekday() trả Sunday=0; chuyển sang Monday=0
	day := (int(t.Weekday()) + 6) % 7
	return day*minutesPerDay + minuteOfDay
}

// InstantsFor tính bộ instants (vị trí phút trong chu kỳ, đã sort, không lặp)
// cho chu kỳ có khóa periodKey. Cùng (Name, periodKey) luôn cho cùng kết quả.
func (s Schedule) InstantsFor(periodKey string) []int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s.Name))
	_, _ = h.Write([]byte("|"))
	_, _ = h.Write([]byte(periodKey))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	total := s.periodMinutes()
	picked := make(map[int]bool, s.Count)
	for len(picked) < s.Count && len(picked) < total {
		picked[rng.Intn(total)] = true
	}

	instants := make([]int, 0, len(picked))
	for m := range picked {
		instants = append(instants, m)
	}
	sort.Ints(instants)
	return instants
}

// Matches kiểm tra thời điểm t (chính xác đến phút) có phải một trigger instant
// của schedule hay không.
func (s Schedule) Matches(t time.Time) bool {
	instants := s.InstantsFor(s.periodKey(t))
	minute := s.minuteOfPeriod(t)
	for _, m := range instants {
		if m == minute {
			return true
		}
	}
	return false
}

// FiringsBetween trả về các thời điểm trigger trong khoảng (from, to],
// duyệt từng mốc phút. Dùng để không bỏ sót instant khi một tick đến trễ.
func (s Schedule) FiringsBetween(from, to time.Time) []time.Time {
	var fired []time.Time
	start := from.Truncate(time.Minute).Add(time.Minute)
	for t := start; !t.After(to); t = t.Add(time.Minute) {
		if s.Matches(t) {
			fired = append(fired, t)
		}
	}
	return fired
}
