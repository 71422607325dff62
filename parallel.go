package spanscan

import (
	"context"
	"runtime"
	"sync"
	"unicode/utf8"

	"github.com/biggeezerdevelopment/spanscan/internal/scanner"
)

// ParallelConfig holds configuration for ScanAll.
type ParallelConfig struct {
	// Workers is the number of worker goroutines.
	// Default: runtime.NumCPU()
	Workers int
}

// Result is the outcome of scanning one input of a batch.
type Result struct {
	Ranges []Range
	Err    error
}

type job struct {
	index int
	data  []byte
}

// ScanAll scans independent inputs on a pool of workers, each with its own
// scanner. Results are returned in input order. Once ctx is done no further
// inputs are dispatched; inputs never started report ctx.Err().
func ScanAll(ctx context.Context, inputs [][]byte, config *Config, pc ParallelConfig) []Result {
	cfg := resolve(config)
	if pc.Workers <= 0 {
		pc.Workers = runtime.NumCPU()
	}
	if pc.Workers > len(inputs) {
		pc.Workers = len(inputs)
	}

	results := make([]Result, len(inputs))
	jobs := make(chan job)
	var wg sync.WaitGroup

	for i := 0; i < pc.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := scanner.New(scannerOptions(&cfg))
			defer s.Release()
			for j := range jobs {
				results[j.index] = scanOne(s, j.data, &cfg)
			}
		}()
	}

	dispatched := 0
dispatch:
	for ; dispatched < len(inputs); dispatched++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- job{index: dispatched, data: inputs[dispatched]}:
		}
	}
	close(jobs)
	wg.Wait()

	for i := dispatched; i < len(inputs); i++ {
		results[i].Err = ctx.Err()
	}
	cfg.Logger.Printf("batch done: %d of %d inputs scanned by %d workers", dispatched, len(inputs), pc.Workers)
	return results
}

func scanOne(s *scanner.Scanner, data []byte, cfg *Config) Result {
	if !cfg.TrustedInput && !utf8.Valid(data) {
		return Result{Err: encodingError(data)}
	}
	return Result{Ranges: copyRanges(s.Scan(data, cfg.Strategy))}
}
