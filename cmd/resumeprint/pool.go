package main

import (
	"context"
	"runtime"
	"sync"

	resumeprint "github.com/alnah/go-resumeprint"
)

// Exporter is the interface for the export service.
type Exporter interface {
	ExportHTML(ctx context.Context, input resumeprint.Input) (string, error)
	ExportPDF(ctx context.Context, input resumeprint.Input) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Exporter = (*resumeprint.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() Exporter
	Release(Exporter)
	Size() int
}

// MaxPoolSize caps the number of concurrent browser instances.
const MaxPoolSize = 8

// ServicePool manages a pool of resumeprint.Service instances for
// parallel exports. Each service has its own browser instance, enabling
// true parallelism. Services are created lazily on first acquire to
// avoid startup delay.
type ServicePool struct {
	size     int
	opts     []resumeprint.Option
	services []*resumeprint.Service
	sem      chan Exporter
	mu       sync.Mutex
	created  int
	closed   bool
}

// Compile-time check that ServicePool implements Pool.
var _ Pool = (*ServicePool)(nil)

// NewServicePool creates a pool with capacity for n Service instances,
// each constructed with opts. Services are created lazily when acquired.
func NewServicePool(n int, opts ...resumeprint.Option) *ServicePool {
	if n < 1 {
		n = 1
	}

	return &ServicePool{
		size:     n,
		opts:     opts,
		services: make([]*resumeprint.Service, 0, n),
		sem:      make(chan Exporter, n),
	}
}

// Acquire gets a service from the pool, creating one if needed.
// Blocks if all services are in use.
func (p *ServicePool) Acquire() Exporter {
	// Try to get an existing service (non-blocking)
	select {
	case svc := <-p.sem:
		return svc
	default:
	}

	// Check if we can create a new service
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create new service outside the lock
		svc := resumeprint.New(p.opts...)

		p.mu.Lock()
		p.services = append(p.services, svc)
		p.mu.Unlock()

		return svc
	}
	p.mu.Unlock()

	// All services created, wait for one to be released
	return <-p.sem
}

// Release returns a service to the pool.
func (p *ServicePool) Release(svc Exporter) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.sem <- svc
	}
}

// Close releases all browser resources.
func (p *ServicePool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	services := p.services
	p.mu.Unlock()

	var lastErr error
	for _, svc := range services {
		if err := svc.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Size returns the pool capacity.
func (p *ServicePool) Size() int {
	return p.size
}

// resolvePoolSize determines the optimal pool size.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / 2

	if n < 1 {
		return 1
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
