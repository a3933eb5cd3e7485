package parallel

import (
	"sync"
	"testing"
)

func TestRowsCoversRange(t *testing.T) {
	tests := []struct {
		name             string
		lo, hi, workers  int
		wantSingleCaller bool
	}{
		{"empty", 5, 5, 4, false},
		{"small", 0, 10, 8, true},
		{"one worker", 0, 1000, 1, true},
		{"many", 0, 1000, 8, false},
		{"offset", 37, 611, 3, false},
		{"default workers", 0, 4096, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			seen := make(map[int]int)
			calls := 0
			Rows(tt.lo, tt.hi, tt.workers, func(lo, hi int) {
				mu.Lock()
				defer mu.Unlock()
				calls++
				for y := lo; y < hi; y++ {
					seen[y]++
				}
			})

			if len(seen) != tt.hi-tt.lo {
				t.Errorf("covered %d rows, want %d", len(seen), tt.hi-tt.lo)
			}
			for y, n := range seen {
				if y < tt.lo || y >= tt.hi || n != 1 {
					t.Errorf("row %d visited %d times", y, n)
				}
			}
			if tt.wantSingleCaller && calls != 1 {
				t.Errorf("calls = %d, want 1", calls)
			}
		})
	}
}

func TestRowsBandLimit(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	Rows(0, 3*MinRows, 64, func(lo, hi int) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	if calls > 3 {
		t.Errorf("calls = %d, want at most 3", calls)
	}
}
