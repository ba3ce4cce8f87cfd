package tui

import (
	"github.com/vovakirdan/matrixcode/internal/engine"
	"github.com/vovakirdan/matrixcode/internal/prng"
)

func newEngine(opts engine.Options, r engine.Renderer) (*engine.Engine, error) {
	return engine.New(opts, engine.Clock24{}, prng.New(1), r)
}
