// Package batch runs a set of independent LC-3 program images to
// completion concurrently, one goroutine and one single-threaded cpu.CPU
// per image: a fixed pool of worker goroutines drains a channel of image
// paths, and each result is collected behind a mutex. No VM instance is
// ever touched by more than one goroutine.
package batch

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/lc3vm/lc3vm/internal/cpu"
	"github.com/lc3vm/lc3vm/internal/host"
	"github.com/lc3vm/lc3vm/internal/memory"
)

// Result is the outcome of running a single image to completion.
type Result struct {
	Image   string
	Halted  bool
	Err     error
	Steps   int
	Output  []byte
}

// Table collects Results from concurrently-running images behind a mutex.
type Table struct {
	mu      sync.Mutex
	results []Result
}

// NewTable returns an empty result table.
func NewTable() *Table {
	return &Table{}
}

// Add records one image's result.
func (t *Table) Add(r Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = append(t.results, r)
}

// Results returns a copy of all recorded results, sorted by image path so
// output is deterministic regardless of goroutine completion order.
func (t *Table) Results() []Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Result, len(t.results))
	copy(out, t.results)
	sort.Slice(out, func(i, j int) bool { return out[i].Image < out[j].Image })
	return out
}

// InputFor supplies the per-image host input stream; NumWorkers bounds
// concurrency (defaulting to runtime.NumCPU()).
type Config struct {
	NumWorkers int
	InputFor   func(image string) []byte
}

// Run loads and executes every image in images on one of cfg.NumWorkers
// worker goroutines, each image with its own cpu.CPU/memory.Memory pair,
// and returns a Table holding one Result per image.
func Run(images []string, cfg Config) *Table {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}
	table := NewTable()

	ch := make(chan string, len(images))
	for _, img := range images {
		ch <- img
	}
	close(ch)

	var wg sync.WaitGroup
	for i := 0; i < cfg.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for img := range ch {
				table.Add(runOne(img, cfg))
			}
		}()
	}
	wg.Wait()

	return table
}

func runOne(path string, cfg Config) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Image: path, Err: fmt.Errorf("reading image: %w", err)}
	}

	mem := memory.New()
	if err := memory.LoadImage(mem, data); err != nil {
		return Result{Image: path, Err: fmt.Errorf("loading image: %w", err)}
	}

	var in []byte
	if cfg.InputFor != nil {
		in = cfg.InputFor(path)
	}
	io := host.NewFakeIO(in)
	c := cpu.New(mem, io, io)

	steps := 0
	c.Running = true
	for c.Running {
		if err := c.Step(); err != nil {
			return Result{Image: path, Err: err, Steps: steps, Output: io.Output}
		}
		steps++
	}
	return Result{Image: path, Halted: true, Steps: steps, Output: io.Output}
}
