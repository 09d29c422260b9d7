package smasher

import "sort"

// UnlockSet is the set of level numbers a player may start.
// Level 1 is always present.
type UnlockSet struct {
	levels map[int]struct{}
}

// NewUnlockSet returns a set holding level 1 plus any extra levels.
func NewUnlockSet(levels ...int) *UnlockSet {
	u := &UnlockSet{levels: map[int]struct{}{1: {}}}
	for _, n := range levels {
		u.Add(n)
	}
	return u
}

// Add unlocks level n. It reports whether n was newly added.
func (u *UnlockSet) Add(n int) bool {
	if n <= 0 {
		return false
	}
	if _, ok := u.levels[n]; ok {
		return false
	}
	u.levels[n] = struct{}{}
	return true
}

// Has reports whether level n is unlocked.
func (u *UnlockSet) Has(n int) bool {
	_, ok := u.levels[n]
	return ok
}

// Levels returns the unlocked level numbers in ascending order.
func (u *UnlockSet) Levels() []int {
	out := make([]int, 0, len(u.levels))
	for n := range u.levels {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
