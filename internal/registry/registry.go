// Package registry provides a global catalog of named life patterns.
// Pattern packages register themselves in init() functions, allowing the
// hosts to discover patterns without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-life/internal/life"
)

// ErrUnknownPattern is returned by Lookup for ids that were never registered.
var ErrUnknownPattern = errors.New("unknown pattern")

// PatternInfo contains metadata about a registered pattern.
type PatternInfo struct {
	ID     string
	Name   string
	Width  int
	Height int
	Cells  int
}

var (
	patterns = make(map[string]life.Pattern)
	mu       sync.RWMutex
)

// Register parses text and adds the pattern under id.
// Typically called from an init() function.
// Panics if the id is already registered or the text does not parse.
func Register(id string, text string) {
	p, err := life.ParsePattern(text)
	if err != nil {
		panic(fmt.Sprintf("registry: pattern %q: %v", id, err))
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := patterns[id]; exists {
		panic(fmt.Sprintf("registry: pattern %q already registered", id))
	}
	if p.Name == "" {
		p.Name = id
	}
	patterns[id] = p
}

// List returns information about all registered patterns, sorted by ID.
func List() []PatternInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PatternInfo, 0, len(patterns))
	for id, p := range patterns {
		result = append(result, PatternInfo{
			ID:     id,
			Name:   p.Name,
			Width:  p.Width,
			Height: p.Height,
			Cells:  len(p.Cells),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the pattern registered under id.
func Lookup(id string) (life.Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := patterns[id]
	if !ok {
		return life.Pattern{}, fmt.Errorf("registry: %w %q", ErrUnknownPattern, id)
	}
	return p, nil
}

// Exists checks if a pattern with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := patterns[id]
	return ok
}
