// Package render turns a planned chart into output artifacts. Each
// format registers a renderer factory; callers look renderers up by
// name and get the bytes of one finished artifact, so nothing touches
// disk until every requested format has rendered.
package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/andywolf/skillchart/internal/chart"
)

// Renderer produces one artifact format from a planned chart.
type Renderer interface {
	// Render returns the complete artifact bytes.
	Render(c *chart.Chart) ([]byte, error)
	// Filename returns the default artifact file name for this format.
	Filename() string
}

// Options configures rendering across formats.
type Options struct {
	Width  int
	Height int
}

var (
	registry     = make(map[string]func(Options) Renderer)
	registryLock sync.RWMutex
)

// register adds a renderer factory to the registry.
func register(format string, factory func(Options) Renderer) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registry[format] = factory
}

// New returns the renderer for the given format.
func New(format string, opts Options) (Renderer, error) {
	registryLock.RLock()
	defer registryLock.RUnlock()

	factory, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 800
	}

	return factory(opts), nil
}

// Formats returns all registered format names, sorted.
func Formats() []string {
	registryLock.RLock()
	defer registryLock.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exists checks if a format is registered.
func Exists(format string) bool {
	registryLock.RLock()
	defer registryLock.RUnlock()
	_, ok := registry[format]
	return ok
}
