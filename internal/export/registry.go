// Package export encodes decoded planets for tooling. Output formats
// register themselves in init() functions, so new codecs appear without
// the commands knowing about them.
package export

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gravoids/internal/planet"
)

// Encoder renders a planet snapshot into one output format.
type Encoder func(*Snapshot) ([]byte, error)

var (
	encoders = make(map[string]Encoder)
	mu       sync.RWMutex
)

// ErrUnknownFormat is returned when no encoder is registered under the
// requested format name.
var ErrUnknownFormat = errors.New("unknown export format")

// Register adds an encoder to the registry.
// Typically called from an init() function.
// Panics if the format name is already taken.
func Register(format string, enc Encoder) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := encoders[format]; exists {
		panic(fmt.Sprintf("export: format %q already registered", format))
	}
	encoders[format] = enc
}

// List returns the registered format names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(encoders))
	for format := range encoders {
		result = append(result, format)
	}
	sort.Strings(result)
	return result
}

// Encode renders the planet in the named format.
func Encode(format string, p *planet.Planet) ([]byte, error) {
	mu.RLock()
	enc, ok := encoders[format]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("export: %q: %w", format, ErrUnknownFormat)
	}
	return enc(NewSnapshot(p))
}
