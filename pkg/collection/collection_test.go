package collection_test

import (
	"testing"

	"github.com/shashiranjanraj/storefront/pkg/collection"
)

func TestMap(t *testing.T) {
	got := collection.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	if len(got) != 3 || got[0] != 2 || got[2] != 6 {
		t.Errorf("Map = %v", got)
	}
}

func TestFilter(t *testing.T) {
	got := collection.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("Filter = %v", got)
	}
}

func TestSum(t *testing.T) {
	type line struct {
		price float64
		qty   int
	}
	lines := []line{{10, 2}, {5, 3}}

	total := collection.Sum(lines, func(l line) float64 { return l.price * float64(l.qty) })
	if total != 35 {
		t.Errorf("Sum = %v, want 35", total)
	}
}

func TestFirst(t *testing.T) {
	got, ok := collection.First([]string{"a", "bb", "ccc"}, func(s string) bool { return len(s) == 2 })
	if !ok || got != "bb" {
		t.Errorf("First = %q, %v", got, ok)
	}

	_, ok = collection.First([]string{}, func(string) bool { return true })
	if ok {
		t.Error("First on empty slice must report not found")
	}
}

func TestKeyBy(t *testing.T) {
	type product struct{ ID uint }
	got := collection.KeyBy([]product{{1}, {2}}, func(p product) uint { return p.ID })
	if len(got) != 2 || got[2].ID != 2 {
		t.Errorf("KeyBy = %v", got)
	}
}
