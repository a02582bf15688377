package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/layout"
	"github.com/Ko-stant/house-layout-engine/internal/protocol"
)

// LayoutEngineImpl implements the LayoutEngine interface
type LayoutEngineImpl struct {
	mu        sync.Mutex
	streamMu  sync.Mutex
	generator *layout.Generator
	cfg       layout.Config
	footprint *geometry.TileSet
	sink      layout.Sink
	logger    Logger
	building  *layout.Building
}

// NewLayoutEngine creates an engine generating from cfg. footprint may be nil;
// when set, partition runs divide it instead of a generated outline. Every
// run streams its geometry to sink, which may be nil.
func NewLayoutEngine(cfg layout.Config, footprint *geometry.TileSet, sink layout.Sink, logger Logger) *LayoutEngineImpl {
	return &LayoutEngineImpl{
		generator: layout.NewGenerator(logger),
		cfg:       cfg,
		footprint: footprint,
		sink:      sink,
		logger:    logger,
	}
}

func (e *LayoutEngineImpl) Current() *layout.Building {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.building
}

// Regenerate replaces the current building and then streams its geometry.
// A preset in the request becomes the configuration for later runs too.
func (e *LayoutEngineImpl) Regenerate(req protocol.RequestRegenerate) (*layout.Building, error) {
	building, err := e.generate(req)
	if err != nil {
		return nil, err
	}
	e.stream(building)
	return building, nil
}

// stream replays b into the sink. It runs outside mu so slow viewers never
// hold up Current; streamMu keeps concurrent runs from interleaving.
func (e *LayoutEngineImpl) stream(b *layout.Building) {
	if e.sink == nil {
		return
	}
	e.streamMu.Lock()
	defer e.streamMu.Unlock()
	layout.Replay(b, e.sink)
	if f, ok := e.sink.(interface{ Flush() }); ok {
		f.Flush()
	}
}

func (e *LayoutEngineImpl) generate(req protocol.RequestRegenerate) (*layout.Building, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg := e.cfg
	if req.Preset != "" {
		preset, err := layout.Preset(req.Preset)
		if err != nil {
			return nil, &RequestError{Code: "unknown_preset", Message: err.Error()}
		}
		cfg = preset
	}
	cfg.Seed = req.Seed

	var building *layout.Building
	var err error
	if e.footprint != nil && cfg.Strategy == layout.StrategyPartition {
		building, err = e.generator.GenerateOnFootprint(cfg, *e.footprint, nil)
	} else {
		building, err = e.generator.Generate(cfg, nil)
	}
	if err != nil {
		var cfgErr *layout.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, &RequestError{Code: "invalid_config", Message: err.Error()}
		}
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	if req.Preset != "" {
		e.cfg = cfg
		e.cfg.Seed = 0
	}
	e.building = building
	e.logger.Printf("building ready seed=%d strategy=%s", building.Seed, cfg.Strategy)
	return building, nil
}
