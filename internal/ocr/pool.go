package ocr

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ExtractFunc extracts text from one image file. Tests inject fakes.
type ExtractFunc func(ctx context.Context, path string) (string, error)

// Result is one file's extraction outcome. Results are self-contained;
// a failed file carries its error and nothing else is shared between
// workers.
type Result struct {
	Path string
	Name string
	Text string
	Err  error
}

// Pool runs text extraction over a batch of files with a bounded number
// of workers and a per-file timeout. A slow or hung extraction never
// blocks the batch beyond its own deadline, and a failed file never
// aborts the run. No retries.
type Pool struct {
	workers int
	timeout time.Duration
	extract ExtractFunc
	log     *zap.Logger
}

func NewPool(workers int, timeout time.Duration, extract ExtractFunc, log *zap.Logger) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > 8 {
			workers = 8
		}
	}
	if extract == nil {
		extract = ExtractText
	}
	return &Pool{workers: workers, timeout: timeout, extract: extract, log: log}
}

func (p *Pool) Workers() int {
	return p.workers
}

// Run processes every file and returns the results in completion order.
func (p *Pool) Run(ctx context.Context, files []string) []Result {
	jobs := make(chan string)
	out := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				out <- p.runOne(ctx, path)
			}
		}()
	}

	go func() {
		for _, f := range files {
			jobs <- f
		}
		close(jobs)
		wg.Wait()
		close(out)
	}()

	start := time.Now()
	results := make([]Result, 0, len(files))
	for res := range out {
		if res.Err != nil {
			p.log.Warn("extraction failed",
				zap.String("file", res.Name),
				zap.Error(res.Err),
			)
		}
		results = append(results, res)

		if n := len(results); n%10 == 0 || n == len(files) {
			p.log.Info("extraction progress",
				zap.Int("done", n),
				zap.Int("total", len(files)),
				zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
			)
		}
	}
	return results
}

func (p *Pool) runOne(ctx context.Context, path string) Result {
	fileCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	text, err := p.extract(fileCtx, path)
	return Result{
		Path: path,
		Name: filepath.Base(path),
		Text: text,
		Err:  err,
	}
}
