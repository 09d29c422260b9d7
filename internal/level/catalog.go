package level

import (
	"fmt"
	"sort"
	"sync"
)

// Recipe is a hand-authored level layout.
type Recipe struct {
	Number     int
	Name       string
	Difficulty string

	// Build lays out the level's blocks. It must be deterministic.
	Build func(p Params) []Block
}

// Info describes a playable level for menus and listings.
type Info struct {
	Number     int
	Name       string
	Difficulty string
	Procedural bool
}

var (
	recipes = make(map[int]Recipe)
	mu      sync.RWMutex
)

// Register adds a curated recipe to the catalog.
// Typically called from an init() function.
// Panics if the level number is already taken or the recipe has no builder.
func Register(r Recipe) {
	mu.Lock()
	defer mu.Unlock()

	if r.Build == nil {
		panic(fmt.Sprintf("level: recipe %d has no builder", r.Number))
	}
	if _, exists := recipes[r.Number]; exists {
		panic(fmt.Sprintf("level: level %d already registered", r.Number))
	}

	recipes[r.Number] = r
}

// Lookup returns the curated recipe for level n.
func Lookup(n int) (Recipe, bool) {
	mu.RLock()
	defer mu.RUnlock()

	r, ok := recipes[n]
	return r, ok
}

// Exists checks if a curated recipe is registered for level n.
func Exists(n int) bool {
	_, ok := Lookup(n)
	return ok
}

// List returns all curated levels sorted by number.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, Info{
			Number:     r.Number,
			Name:       r.Name,
			Difficulty: r.Difficulty,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Number < result[j].Number
	})

	return result
}

// MaxCurated returns the highest curated level number, or 0 if none exist.
func MaxCurated() int {
	mu.RLock()
	defer mu.RUnlock()

	highest := 0
	for n := range recipes {
		highest = max(highest, n)
	}
	return highest
}

// CheckCurated reports the first curated block that p.Bounds rejects.
// Recipes use fixed coordinates, so a canvas that is too small cannot hold
// every layout.
func CheckCurated(p Params) error {
	g := NewGenerator(p)
	for _, info := range List() {
		for i, b := range g.Generate(info.Number) {
			if !p.Bounds.Accepts(b.X, b.Y, b.W, b.H) {
				return fmt.Errorf("level %d block %d at (%v, %v) %vx%v does not fit a %vx%v canvas with margin %v",
					info.Number, i, b.X, b.Y, b.W, b.H, p.Bounds.CanvasW, p.Bounds.CanvasH, p.Bounds.Margin)
			}
		}
	}
	return nil
}

var proceduralDifficulties = []string{"Easy", "Medium", "Hard", "Expert"}

// ProceduralLevels lists count seeded levels starting just above threshold.
// Every three levels the difficulty label steps up, wrapping after Expert.
func ProceduralLevels(threshold, count int) []Info {
	result := make([]Info, 0, max(count, 0))
	for i := 0; i < count; i++ {
		result = append(result, Info{
			Number:     threshold + 1 + i,
			Name:       fmt.Sprintf("Random Level #%d", i+1),
			Difficulty: proceduralDifficulties[(i/3)%len(proceduralDifficulties)],
			Procedural: true,
		})
	}
	return result
}
