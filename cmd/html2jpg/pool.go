package main

import (
	"runtime"
	"sync"

	html2jpg "github.com/alnah/go-html2jpg"
)

// RendererPool manages a pool of html2jpg.Converter instances for parallel
// processing. Each converter has its own browser instance, enabling true
// parallelism. Converters are created lazily on first acquire to avoid
// startup delay when a batch turns out to be small.
type RendererPool struct {
	size       int
	opts       []html2jpg.Option
	converters []*html2jpg.Converter
	sem        chan CLIConverter
	mu         sync.Mutex
	created    int
	closed     bool
}

// NewRendererPool creates a pool with capacity for n Converter instances.
// Converters are created lazily when acquired, not at pool creation.
func NewRendererPool(n int, opts ...html2jpg.Option) *RendererPool {
	if n < 1 {
		n = 1
	}

	return &RendererPool{
		size:       n,
		opts:       opts,
		converters: make([]*html2jpg.Converter, 0, n),
		sem:        make(chan CLIConverter, n),
	}
}

// Compile-time check that RendererPool implements Pool.
var _ Pool = (*RendererPool)(nil)

// Acquire gets a converter from the pool, creating one if needed.
// Blocks if all converters are in use.
func (p *RendererPool) Acquire() CLIConverter {
	// Try to get an existing converter (non-blocking)
	select {
	case svc := <-p.sem:
		return svc
	default:
	}

	// Check if we can create a new converter
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create new converter outside the lock
		svc := html2jpg.New(p.opts...)

		p.mu.Lock()
		p.converters = append(p.converters, svc)
		p.mu.Unlock()

		return svc
	}
	p.mu.Unlock()

	// All converters created, wait for one to be released
	return <-p.sem
}

// Release returns a converter to the pool.
func (p *RendererPool) Release(svc CLIConverter) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.sem <- svc
	}
}

// Close releases all browser resources.
func (p *RendererPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	converters := p.converters
	p.mu.Unlock()

	var lastErr error
	for _, svc := range converters {
		if err := svc.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Size returns the pool capacity.
func (p *RendererPool) Size() int {
	return p.size
}

// resolvePoolSize determines the pool size.
// Priority: explicit worker count > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	// Explicit count takes priority
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
