// Package rules provides the concrete implementation of the engine
// interface: the stage graph, budget ledger, derived-value, and
// completion-tracking rules of character creation.
package rules

import (
	"github.com/Arx-Game/arxii-sub002/internal/engine"
)

// Adapter implements the engine.Engine interface. It holds no state:
// every operation is a pure function of its input, so a single Adapter
// is safe to share across requests.
type Adapter struct{}

// NewAdapter creates a new rules engine adapter
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)
