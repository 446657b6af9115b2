package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// profiler captures a CPU profile and an execution trace of a run
type profiler struct {
	files []*os.File
	cpu   bool
	trace bool
}

// startProfiling begins whichever captures have a non-empty path
func startProfiling(cpuPath, tracePath string) (*profiler, error) {
	p := &profiler{}
	if cpuPath != "" {
		f, err := os.Create(cpuPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create profile file: %w", err)
		}
		p.files = append(p.files, f)
		if err := pprof.StartCPUProfile(f); err != nil {
			p.close()
			return nil, fmt.Errorf("failed to start CPU profile: %w", err)
		}
		p.cpu = true
	}
	if tracePath != "" {
		f, err := os.Create(tracePath)
		if err != nil {
			p.Stop()
			return nil, fmt.Errorf("failed to create trace file: %w", err)
		}
		p.files = append(p.files, f)
		if err := trace.Start(f); err != nil {
			p.Stop()
			return nil, fmt.Errorf("failed to start trace: %w", err)
		}
		p.trace = true
	}
	return p, nil
}

// Stop flushes the captures and prints where they went
func (p *profiler) Stop() {
	if p.cpu {
		pprof.StopCPUProfile()
		p.cpu = false
	}
	if p.trace {
		trace.Stop()
		p.trace = false
	}
	for _, f := range p.files {
		log.Printf("Profile saved to: %s", f.Name())
	}
	p.close()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Memory: alloc %d KB, total %d KB, gc %d", m.Alloc/1024, m.TotalAlloc/1024, m.NumGC)
}

func (p *profiler) close() {
	for _, f := range p.files {
		_ = f.Close()
	}
	p.files = nil
}
