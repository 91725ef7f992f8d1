// Package engine runs a proposed action through the ordered pipeline
// initialize → apply-action → re-derive-aggregates → simulate → validate.
// Every stage is a pure function of the state the previous stage produced.
package engine

import (
	"cosmossdk.io/log"

	"github.com/provlabs/basket/boost"
	"github.com/provlabs/basket/types"
)

// Engine evaluates proposed actions against snapshots. It holds no snapshot
// state and is safe for concurrent use.
type Engine struct {
	logger log.Logger
	boosts boost.Table
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithBoostTable sets the coefficient table used for vaults that do not
// expose their own coefficients. The default is boost.DefaultTable.
func WithBoostTable(table boost.Table) Option {
	return func(e *Engine) { e.boosts = table }
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: log.NewNopLogger(),
		boosts: boost.DefaultTable(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("module", types.ModuleName)
	return e
}

// Logger returns the engine's module-scoped logger.
func (e *Engine) Logger() log.Logger {
	return e.logger
}

// BoostTable returns the coefficient table in use.
func (e *Engine) BoostTable() boost.Table {
	return e.boosts
}
