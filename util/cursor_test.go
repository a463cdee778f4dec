package util

import (
	"sync"
	"testing"
)

func TestWorkCursor_ClaimsInOrder(t *testing.T) {
	c := NewWorkCursor(3)
	for want := range 3 {
		got, ok := c.Claim()
		if !ok || got != want {
			t.Fatalf("Claim() = %d, %v, want %d, true", got, ok, want)
		}
	}
	if _, ok := c.Claim(); ok {
		t.Error("Claim() succeeded after every index was handed out")
	}
	if c.Claimed() != 3 {
		t.Errorf("Claimed() = %d, want 3 (the counter must not pass the total)", c.Claimed())
	}
}

func TestWorkCursor_Empty(t *testing.T) {
	for _, total := range []int{0, -5} {
		c := NewWorkCursor(total)
		if _, ok := c.Claim(); ok {
			t.Errorf("NewWorkCursor(%d).Claim() succeeded", total)
		}
		if c.Total() != 0 {
			t.Errorf("NewWorkCursor(%d).Total() = %d, want 0", total, c.Total())
		}
	}
}

func TestWorkCursor_Concurrent(t *testing.T) {
	// Every index must be claimed by exactly one goroutine
	const (
		total      = 10000
		goroutines = 64
	)
	c := NewWorkCursor(total)
	results := make(chan int, total)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()
			last := -1
			for {
				i, ok := c.Claim()
				if !ok {
					return
				}
				if i <= last {
					t.Errorf("claims went backwards: %d after %d", i, last)
				}
				last = i
				results <- i
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool, total)
	for i := range results {
		if seen[i] {
			t.Errorf("Duplicate index claimed: %d", i)
		}
		seen[i] = true
	}
	if len(seen) != total {
		t.Errorf("Expected %d unique indices, got %d", total, len(seen))
	}
	if c.Claimed() != total {
		t.Errorf("Claimed() = %d, want %d", c.Claimed(), total)
	}
}
