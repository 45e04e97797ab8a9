// Package utils
package utils

import "testing"

type item struct {
	name  string
	value int64
}

func TestSumBy(t *testing.T) {
	tests := []struct {
		items    []*item
		expected int64
	}{
		{nil, 0},
		{[]*item{{"a", 1}}, 1},
		{[]*item{{"a", 1}, {"b", 20}, {"c", 300}, {"d", 4000}}, 4321},
		{[]*item{{"a", -5}, {"b", 5}}, 0},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		sum := SumBy(test.items, func(element *item) int64 { return element.value })
		if sum != test.expected {
			fail++
			t.Errorf("SumBy(%d items) = %d; expected %d", len(test.items), sum, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestSumBy: %d pass, %d fail", pass, fail)
}

func TestReverseForEach(t *testing.T) {
	order := make([]int, 0, 3)
	ReverseForEach([]string{"x", "y", "z"}, func(index int, _ string) { order = append(order, index) })
	if len(order) != 3 || order[0] != 2 || order[1] != 1 || order[2] != 0 {
		t.Errorf("ReverseForEach visited %v; expected [2 1 0]", order)
	}
}

func TestCachedValue(t *testing.T) {
	calls := 0
	cached := NewCachedValue(0, func() *int {
		calls++
		value := calls
		return &value
	})
	if *cached.GetValue() != 1 || *cached.GetValue() != 1 {
		t.Errorf("cached value recomputed before invalidation")
	}
	cached.Invalidate()
	if *cached.GetValue() != 2 {
		t.Errorf("cached value not recomputed after invalidation")
	}
}
