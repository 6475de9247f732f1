package assets

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Manager loads every key from a source in the background and serves the
// loaded images. A key that fails to load still counts toward progress, so
// loading always completes; Image then reports it missing.
type Manager struct {
	src    Source
	keys   []string
	logger *log.Logger

	mu     sync.RWMutex
	images map[string]Image

	loaded atomic.Int32
	failed atomic.Int32
	done   chan struct{}
}

// NewManager creates a manager for keys. A nil logger discards output.
func NewManager(src Source, keys []string, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		src:    src,
		keys:   keys,
		logger: logger,
		images: make(map[string]Image, len(keys)),
		done:   make(chan struct{}),
	}
}

// LoadAll loads every key concurrently and returns when all have settled.
// Must be called once.
func (m *Manager) LoadAll(ctx context.Context) {
	defer close(m.done)

	var wg sync.WaitGroup
	for _, key := range m.keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			defer m.loaded.Add(1)

			img, err := m.src.Load(ctx, key)
			if err != nil {
				m.failed.Add(1)
				m.logger.Warn("image unavailable, using fallback", "key", key, "err", err)
				return
			}
			m.mu.Lock()
			m.images[key] = img
			m.mu.Unlock()
		}(key)
	}
	wg.Wait()

	m.logger.Debug("assets loaded", "total", len(m.keys), "failed", m.failed.Load())
}

// Progress returns the share of keys settled, in [0, 1].
func (m *Manager) Progress() float64 {
	if len(m.keys) == 0 {
		return 1
	}
	return float64(m.loaded.Load()) / float64(len(m.keys))
}

// Done is closed once LoadAll has settled every key.
func (m *Manager) Done() <-chan struct{} { return m.done }

// Failed returns the number of keys that could not be loaded.
func (m *Manager) Failed() int { return int(m.failed.Load()) }

// Image returns the loaded image for key.
func (m *Manager) Image(key string) (Image, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	img, ok := m.images[key]
	return img, ok
}
