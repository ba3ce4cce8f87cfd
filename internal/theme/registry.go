// Package theme provides a registry of named color themes.
// Themes register themselves in init() functions, so the CLI can list them
// and the terminal front end can look them up by ID.
package theme

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/matrixcode/internal/core"
)

// Theme maps the engine's cell states to colors.
type Theme struct {
	ID    string
	Title string
	Head  core.Color   // freshly spawned glyph, no glow yet
	Digit core.Color   // clock band
	Trail []core.Color // glow frames, brightest first
}

// FrameColor returns the color for glow frame f out of frames total.
// Frames are spread proportionally over the trail; out-of-range frames are
// clamped to its ends.
func (t Theme) FrameColor(f, frames int) core.Color {
	if len(t.Trail) == 0 {
		return t.Head
	}
	if frames < 1 {
		frames = 1
	}
	f = core.Clamp(f, 0, frames-1)
	return t.Trail[f*len(t.Trail)/frames]
}

// Info contains metadata about a registered theme.
type Info struct {
	ID    string
	Title string
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Typically called from an init() function.
// Panics if a theme with the same ID is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if t.ID == "" {
		panic("theme: empty theme ID")
	}
	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("theme: %q already registered", t.ID))
	}

	themes[t.ID] = t
}

// List returns information about all registered themes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(themes))
	for id, t := range themes {
		result = append(result, Info{
			ID:    id,
			Title: t.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get looks up a theme by its ID.
// Returns an error if the theme ID is not registered.
func Get(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("theme: unknown theme %q", id)
	}
	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}
