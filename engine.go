package opcuaview

import (
	"github.com/o16s/opcuaview/internal/logging"
	"github.com/o16s/opcuaview/internal/metrics"
)

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithEngineLogger attaches a logger handle to the engine, used for
// reference-type-hierarchy resolution misses and continuation-point
// lifecycle events not already attributed to a specific Session.
func WithEngineLogger(l logging.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics registers a Prometheus collector the engine reports
// continuation-point and reference-count activity to. Optional: an Engine
// with no collector configured simply skips every metrics call.
func WithMetrics(c *metrics.Collector) EngineOption {
	return func(e *Engine) { e.metrics = c }
}

// Engine is the Browse Engine: it traverses one node's
// references at a time, honours pagination, manages continuation points
// attached to a Session, and combines with the Path Resolver (path.go) to
// back TranslateBrowsePathsToNodeIds. It holds no session-specific state
// itself — every method takes the Session it should read and mutate.
type Engine struct {
	store   NodeStore
	logger  logging.Logger
	metrics *metrics.Collector

	// admin is the internal administrative session the convenience
	// single-path entry points use. It is created lazily with an
	// effectively unbounded quota.
	admin *Session
}

// NewEngine builds an Engine over store.
func NewEngine(store NodeStore, opts ...EngineOption) *Engine {
	e := &Engine{store: store, logger: logging.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) adminSession() *Session {
	if e.admin == nil {
		e.admin = NewSession(1<<20, WithLogger(e.logger))
	}
	return e.admin
}
