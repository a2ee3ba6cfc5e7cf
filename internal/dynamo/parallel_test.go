package dynamo

import (
	"sort"
	"sync"
	"testing"
)

func TestParallelForCoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 37
	var mu sync.Mutex
	seen := make([]int, 0, n)

	ParallelFor(n, 4, 4, func(start, end int) {
		mu.Lock()
		for i := start; i < end; i++ {
			seen = append(seen, i)
		}
		mu.Unlock()
	})

	if len(seen) != n {
		t.Fatalf("got %d indices, want %d", len(seen), n)
	}
	sort.Ints(seen)
	for i, v := range seen {
		if v != i {
			t.Fatalf("index %d missing or duplicated, sorted: %v", i, seen)
		}
	}
}

func TestParallelForLastWorkerAbsorbsRemainder(t *testing.T) {
	const n = 10
	const workers = 3 // floor(10/3) = 3, so blocks are [0,3) [3,6) [6,10)

	var mu sync.Mutex
	var blocks [][2]int

	ParallelFor(n, 1, workers, func(start, end int) {
		mu.Lock()
		blocks = append(blocks, [2]int{start, end})
		mu.Unlock()
	})

	sort.Slice(blocks, func(i, j int) bool { return blocks[i][0] < blocks[j][0] })

	want := [][2]int{{0, 3}, {3, 6}, {6, 10}}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d: %v", len(blocks), len(want), blocks)
	}
	for i := range want {
		if blocks[i] != want[i] {
			t.Errorf("block %d = %v, want %v", i, blocks[i], want[i])
		}
	}
}

func TestParallelForSmallRangeRunsInline(t *testing.T) {
	calls := 0
	ParallelFor(2, 10, 4, func(start, end int) {
		calls++
		if start != 0 || end != 2 {
			t.Errorf("got (%d, %d), want (0, 2)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("expected exactly one inline call, got %d", calls)
	}
}
