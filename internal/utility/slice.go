package utility

import "math/rand"

// Contains kiểm tra một phần tử có trong slice hay không
func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// PickOne chọn ngẫu nhiên một phần tử từ slice.
// Trả về zero value của T nếu slice rỗng.
func PickOne[T any](rng *rand.Rand, slice []T) (item T) {
	if len(slice) == 0 {
		return item
	}
	return slice[rng.Intn(len(slice))]
}

// Sample chọn ngẫu nhiên n phần tử không lặp lại từ slice.
// Nếu n >= len(slice), trả về bản sao đã xáo trộn của toàn bộ slice.
// Slice gốc không bị thay đổi.
func Sample[T any](rng *rand.Rand, slice []T, n int) []T {
	if n <= 0 || len(slice) == 0 {
		return nil
	}
	shuffled := make([]T, len(slice))
	copy(shuffled, slice)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
