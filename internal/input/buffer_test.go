package input

import (
	"testing"
	"time"

	"github.com/cookierampage/rampage/internal/grid"
)

const debounce = 300 * time.Millisecond

func TestCommitRejectsOpposite(t *testing.T) {
	for _, current := range grid.Directions {
		b := NewBuffer(debounce, current)
		b.Submit(current.Opposite())
		for _, dt := range []time.Duration{0, debounce, 10 * time.Second} {
			b.Tick(dt)
			got, ok := b.Commit(current)
			if ok {
				t.Errorf("current %s: reverse %s committed after %s", current, current.Opposite(), dt)
			}
			if got != current {
				t.Errorf("current %s: expected heading kept, got %s", current, got)
			}
		}
	}
}

func TestCommitWaitsForDebounce(t *testing.T) {
	b := NewBuffer(debounce, grid.Up)
	b.Submit(grid.Left)
	b.Tick(debounce - time.Millisecond)
	if _, ok := b.Commit(grid.Up); ok {
		t.Fatal("expected no commit before debounce elapsed")
	}
	b.Tick(time.Millisecond)
	got, ok := b.Commit(grid.Up)
	if !ok || got != grid.Left {
		t.Fatalf("expected left committed, got %s %v", got, ok)
	}
}

func TestDebounceAllowsOneChangePerPeriod(t *testing.T) {
	b := NewBuffer(debounce, grid.Up)
	b.Tick(debounce)
	current := grid.Up
	changes := 0

	b.Submit(grid.Left)
	if d, ok := b.Commit(current); ok {
		if d != current {
			changes++
		}
		current = d
	}
	b.Tick(100 * time.Millisecond)
	b.Submit(grid.Down)
	if d, ok := b.Commit(current); ok {
		if d != current {
			changes++
		}
		current = d
	}
	if changes != 1 {
		t.Errorf("expected exactly one change within the debounce period, got %d", changes)
	}
	if current != grid.Left {
		t.Errorf("expected left, got %s", current)
	}

	b.Tick(200 * time.Millisecond)
	if d, ok := b.Commit(current); !ok || d != grid.Down {
		t.Errorf("expected down after a full period, got %s %v", d, ok)
	}
}

func TestSubmitLatestWins(t *testing.T) {
	b := NewBuffer(debounce, grid.Up)
	b.Submit(grid.Left)
	b.Submit(grid.Right)
	b.Submit(grid.Left)
	b.Tick(debounce)
	if d, ok := b.Commit(grid.Up); !ok || d != grid.Left {
		t.Errorf("expected latest request left, got %s %v", d, ok)
	}
	if p, _ := b.Pending(); p != grid.Left {
		t.Errorf("expected pending left, got %s", p)
	}
}

func TestSameDirectionCommitRearmsTimer(t *testing.T) {
	b := NewBuffer(debounce, grid.Up)
	b.Tick(debounce)
	if d, ok := b.Commit(grid.Up); !ok || d != grid.Up {
		t.Fatalf("expected up committed, got %s %v", d, ok)
	}
	if b.Ready() {
		t.Error("expected commit to rearm debounce")
	}
	b.Submit(grid.Right)
	if _, ok := b.Commit(grid.Up); ok {
		t.Error("expected no commit right after a rearm")
	}
}

func TestRejectedReverseDoesNotRearm(t *testing.T) {
	b := NewBuffer(debounce, grid.Up)
	b.Submit(grid.Down)
	b.Tick(debounce)
	b.Commit(grid.Up)
	b.Submit(grid.Left)
	if d, ok := b.Commit(grid.Up); !ok || d != grid.Left {
		t.Errorf("expected left committed after a rejected reverse, got %s %v", d, ok)
	}
}
