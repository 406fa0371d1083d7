package orekit

import (
	"sync"
	"testing"

	"github.com/gonum/floats"
)

func TestConfigDefaults(t *testing.T) {
	cfg := propConfig()
	if !floats.EqualWithinAbs(cfg.solverTol, 1e-12, 1e-15) {
		t.Fatalf("solver tolerance = %g", cfg.solverTol)
	}
	if cfg.solverMaxIter != 50 {
		t.Fatalf("solver iteration budget = %d", cfg.solverMaxIter)
	}
	if !floats.EqualWithinAbs(cfg.eventTimeTol, 1e-6, 1e-9) {
		t.Fatalf("event time tolerance = %g", cfg.eventTimeTol)
	}
	if cfg.eventMaxIter != 100 {
		t.Fatalf("event iteration budget = %d", cfg.eventMaxIter)
	}
	if cfg.outputDir == "" {
		t.Fatal("output path not set")
	}
}

func TestConfigConcurrentLoad(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cfg := propConfig()
			if cfg.solverMaxIter != 50 {
				t.Errorf("solver iteration budget = %d", cfg.solverMaxIter)
			}
		}()
	}
	wg.Wait()
}
