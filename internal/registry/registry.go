// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

// Game is the interface every simulation exposes to the hosts.
// Games contain pure logic; the platform handles input mapping, timing and
// drawing, and receives the game's output through the core.Outputs the
// factory was given.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "dragon").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset rebuilds the game for a runtime configuration and returns it
	// to the start phase. The RuntimeConfig provides screen size, tick
	// rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Begin starts or restarts a session, as if the begin signal arrived.
	Begin()

	// Step advances the simulation by one fixed tick.
	Step(in core.InputState) core.StepResult

	// Resize informs the game of a new host surface size.
	Resize(width, height int)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance writing to the given outputs.
type Factory func(out core.Outputs) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary headless instance
	g := f(core.Outputs{}.WithDefaults())
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Nil collaborators in out are replaced with no-ops.
// Returns an error if the game ID is not registered.
func Create(id string, out core.Outputs) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(out.WithDefaults()), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Summarizer is implemented by games that report end-of-run statistics.
type Summarizer interface {
	Summary() []core.Stat
}
