package reach

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Reachable_matchesSeedItself(t *testing.T) {
	successors := func(n int) []int { return nil }
	assert.True(t, Reachable(5, successors, func(n int) bool { return n == 5 }))
}

func Test_Reachable_followsChain(t *testing.T) {
	graph := map[int][]int{0: {1}, 1: {2}, 2: {3}, 3: nil}
	successors := func(n int) []int { return graph[n] }
	assert.True(t, Reachable(0, successors, func(n int) bool { return n == 3 }))
	assert.False(t, Reachable(3, successors, func(n int) bool { return n == 0 }))
}

func Test_Reachable_terminatesOnCycle(t *testing.T) {
	graph := map[int][]int{0: {1}, 1: {0}}
	successors := func(n int) []int { return graph[n] }
	assert.False(t, Reachable(0, successors, func(n int) bool { return n == 99 }))
}

func Test_Reachable_noMatch(t *testing.T) {
	graph := map[string][]string{"a": {"b"}, "b": nil}
	successors := func(n string) []string { return graph[n] }
	assert.False(t, Reachable("a", successors, func(n string) bool { return n == "z" }))
}
