package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Ko-stant/house-layout-engine/internal/protocol"
	"github.com/Ko-stant/house-layout-engine/internal/ws"
)

func main() {
	serverCfg, err := LoadServerConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	layoutCfg, err := serverCfg.LayoutConfig()
	if err != nil {
		log.Fatalf("Failed to load layout config: %v", err)
	}
	footprint, err := serverCfg.Footprint()
	if err != nil {
		log.Fatalf("Failed to load footprint: %v", err)
	}

	logger := NewLogger()
	hub := ws.NewHub()
	sequence := NewSequenceGenerator()
	broadcaster := NewBroadcaster(hub, sequence)

	metrics := NewGenerationMetrics()
	engine := NewInstrumentedLayoutEngine(
		NewLayoutEngine(layoutCfg, footprint, NewBroadcastSink(broadcaster), logger),
		metrics,
	)
	if _, err := engine.Regenerate(protocol.RequestRegenerate{Seed: layoutCfg.Seed}); err != nil {
		log.Fatalf("Failed to generate initial building: %v", err)
	}

	StartProfiling(GetProfilingConfigFromEnv())
	StartMetricsReporting(metrics, serverCfg.MetricsInterval)

	handlers := NewHandlers(engine, broadcaster, logger, NewConnectionManager(), sequence)

	mux := http.NewServeMux()
	mux.HandleFunc("/", handlers.ServeIndex)
	mux.HandleFunc("/api/building", handlers.ServeBuilding)
	mux.HandleFunc("/regenerate", handlers.ServeRegenerate)
	mux.HandleFunc("/stream", handlers.ServeStream(hub))

	log.Printf("listening on :%s", serverCfg.Port)
	log.Fatal(http.ListenAndServe(":"+serverCfg.Port, mux))
}
