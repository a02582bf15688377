package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/Ko-stant/house-layout-engine/internal/layout"
	"github.com/Ko-stant/house-layout-engine/internal/protocol"
)

// ProfilingConfig holds configuration for profiling
type ProfilingConfig struct {
	Enabled bool
	Port    string
}

// StartProfiling starts the pprof server on its own port
func StartProfiling(config ProfilingConfig) {
	if !config.Enabled {
		return
	}

	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)

	go func() {
		log.Printf("Starting pprof server on :%s", config.Port)
		if err := http.ListenAndServe(":"+config.Port, nil); err != nil {
			log.Printf("pprof server failed: %v", err)
		}
	}()

	log.Printf("Profiling enabled. Access profiles at:")
	log.Printf("  - CPU: curl http://localhost:%s/debug/pprof/profile?seconds=30 > cpu.prof", config.Port)
	log.Printf("  - Memory: curl http://localhost:%s/debug/pprof/heap > mem.prof", config.Port)
}

// GetProfilingConfigFromEnv creates profiling config from environment variables
func GetProfilingConfigFromEnv() ProfilingConfig {
	port := os.Getenv("PPROF_PORT")
	if port == "" {
		port = "42069"
	}
	return ProfilingConfig{
		Enabled: os.Getenv("ENABLE_PROFILING") == "true",
		Port:    port,
	}
}

// GenerationMetrics holds generation tracking data
type GenerationMetrics struct {
	mu                 sync.Mutex
	BuildingsGenerated int64
	RoomsGenerated     int64
	WarningsRaised     int64
	FailedRuns         int64
	AvgGenerateTime    time.Duration
	PeakGenerateTime   time.Duration
	PeakMemoryUsage    uint64
	StartTime          time.Time
}

func NewGenerationMetrics() *GenerationMetrics {
	return &GenerationMetrics{
		StartTime: time.Now(),
	}
}

// TrackGeneration records one finished run. b is nil for a failed run.
func (gm *GenerationMetrics) TrackGeneration(b *layout.Building, duration time.Duration) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if b == nil {
		gm.FailedRuns++
		return
	}
	gm.BuildingsGenerated++
	gm.RoomsGenerated += int64(b.RoomCount())
	gm.WarningsRaised += int64(len(b.Warnings))
	gm.AvgGenerateTime = (gm.AvgGenerateTime*time.Duration(gm.BuildingsGenerated-1) + duration) / time.Duration(gm.BuildingsGenerated)
	if duration > gm.PeakGenerateTime {
		gm.PeakGenerateTime = duration
	}
}

func (gm *GenerationMetrics) UpdateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	gm.mu.Lock()
	defer gm.mu.Unlock()
	if m.Alloc > gm.PeakMemoryUsage {
		gm.PeakMemoryUsage = m.Alloc
	}
}

func (gm *GenerationMetrics) LogMetrics() {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	log.Printf("=== Generation Metrics ===")
	log.Printf("Uptime: %v", time.Since(gm.StartTime))
	log.Printf("Buildings generated: %d (failed: %d)", gm.BuildingsGenerated, gm.FailedRuns)
	log.Printf("Rooms generated: %d", gm.RoomsGenerated)
	log.Printf("Warnings raised: %d", gm.WarningsRaised)
	log.Printf("Average generate time: %v", gm.AvgGenerateTime)
	log.Printf("Peak generate time: %v", gm.PeakGenerateTime)
	log.Printf("Peak memory usage: %d bytes", gm.PeakMemoryUsage)
}

// InstrumentedLayoutEngine wraps LayoutEngine with generation tracking
type InstrumentedLayoutEngine struct {
	engine  LayoutEngine
	metrics *GenerationMetrics
}

func NewInstrumentedLayoutEngine(engine LayoutEngine, metrics *GenerationMetrics) *InstrumentedLayoutEngine {
	return &InstrumentedLayoutEngine{
		engine:  engine,
		metrics: metrics,
	}
}

func (ie *InstrumentedLayoutEngine) Regenerate(req protocol.RequestRegenerate) (*layout.Building, error) {
	start := time.Now()
	building, err := ie.engine.Regenerate(req)
	ie.metrics.TrackGeneration(building, time.Since(start))
	ie.metrics.UpdateSystemMetrics()
	return building, err
}

func (ie *InstrumentedLayoutEngine) Current() *layout.Building {
	return ie.engine.Current()
}

// StartMetricsReporting starts periodic metrics reporting
func StartMetricsReporting(metrics *GenerationMetrics, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			metrics.LogMetrics()
		}
	}()
}
