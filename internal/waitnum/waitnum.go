// Package waitnum manages the waiting-number pool handed to customers at
// the counter. Numbers come from a fixed small range and are reused the
// moment an order leaves the active status; the pool is derived from the
// current active orders on every read, never stored.
package waitnum

import "math/rand/v2"

// DefaultPoolSize matches the number tokens kept at the counter.
const DefaultPoolSize = 30

// Available returns the ascending free numbers in [1, poolSize] given the
// numbers held by active orders. Values outside the pool are ignored.
func Available(poolSize int, taken []int) []int {
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}
	used := make(map[int]bool, len(taken))
	for _, n := range taken {
		used[n] = true
	}
	// Walking the pool in order already yields ascending output.
	free := make([]int, 0, poolSize)
	for n := 1; n <= poolSize; n++ {
		if !used[n] {
			free = append(free, n)
		}
	}
	return free
}

// Pick selects a free number uniformly at random. The second return is
// false when the pool is exhausted.
func Pick(available []int) (int, bool) {
	if len(available) == 0 {
		return 0, false
	}
	return available[rand.IntN(len(available))], true
}

// Stale reports whether a previously selected number has been taken by a
// concurrently created order. The register runs this on every board
// refresh and forces a re-pick when it trips.
func Stale(selected int, available []int) bool {
	if selected == 0 {
		return false
	}
	for _, n := range available {
		if n == selected {
			return false
		}
	}
	return true
}
