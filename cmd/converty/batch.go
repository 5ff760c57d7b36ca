package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/GreatValueCreamSoda/goconverty"
)

// job is one file to convert, with its position in the sorted batch.
type job struct {
	index int
	path  string
}

// result is a finished conversion headed for the writer: either an image to
// encode or the per-file error that prevented one.
type result struct {
	path string
	img  *goconverty.BGRImage
	err  error
}

// BatchConverter drives a whole batch through the validate/convert pipeline.
// A producer feeds file paths to a pool of workers; each worker owns its raw
// buffer (recycled through a sync.Pool, since every file in a batch shares
// one geometry) and produces an independent output image. A single writer
// goroutine encodes results and resolves output-name collisions, so the
// output namespace (the only shared resource) needs no locks.
//
// Per-file failures are logged and counted, never fatal: the batch always
// runs to completion unless the context is canceled.
type BatchConverter struct {
	cfg   Config
	files []string

	frameSize int
	bufPool   sync.Pool

	jobs    chan job
	results chan result

	writer *outputWriter

	converted, failed int
}

// NewBatchConverter validates the config against the expected frame size and
// prepares the pipeline.
func NewBatchConverter(cfg Config, files []string) (*BatchConverter, error) {
	frameSize, err := cfg.Format.ExpectedSize(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	bc := &BatchConverter{
		cfg:       cfg,
		files:     files,
		frameSize: frameSize,
		jobs:      make(chan job, 1),
		results:   make(chan result, cfg.Workers*3/2),
		writer:    newOutputWriter(cfg.OutputDir, cfg.UseWebP, cfg.WebPQuality),
	}
	bc.bufPool.New = func() any {
		buf := make([]byte, frameSize)
		return &buf
	}
	return bc, nil
}

// Counts returns how many files converted successfully and how many failed,
// once Run has returned.
func (bc *BatchConverter) Counts() (converted, failed int) {
	return bc.converted, bc.failed
}

// Run executes the batch: producer, worker pool, and writer, wired with
// channels and torn down in order. Returns nil when the batch completed,
// even if individual files failed; returns the context error on
// cancellation.
func (bc *BatchConverter) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		defer close(bc.jobs)
		for i, path := range bc.files {
			select {
			case bc.jobs <- job{index: i, path: path}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var workerWg sync.WaitGroup
	workerWg.Add(bc.cfg.Workers)
	for i := range bc.cfg.Workers {
		go func() {
			defer workerWg.Done()
			bc.convertWorker(ctx, i)
		}()
	}

	go func() {
		workerWg.Wait()
		close(bc.results)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		bc.writeResults(ctx)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return ctx.Err()
	}
}

// convertWorker reads, validates, and converts files from the jobs channel.
// The raw buffer goes back to the pool as soon as the conversion is done;
// the output image is handed off to the writer.
func (bc *BatchConverter) convertWorker(ctx context.Context, workerID int) {
	logf(LogDebug, "Conversion worker %d starting", workerID)

	for j := range withContext(ctx, bc.jobs) {
		logf(LogInfo, "Processing: %s", j.path)

		img, err := bc.convertFile(j.path)

		select {
		case bc.results <- result{path: j.path, img: img, err: err}:
		case <-ctx.Done():
			return
		}
	}

	logf(LogDebug, "Conversion worker %d finished", workerID)
}

// convertFile runs one file through the size check, read, and conversion.
// The size check runs against the file's length on disk before any bytes are
// read, so an undersized or oversized dump is skipped without I/O beyond the
// stat.
func (bc *BatchConverter) convertFile(path string) (*goconverty.BGRImage, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}

	if err := goconverty.Validate(int(info.Size()), bc.cfg.Width,
		bc.cfg.Height, bc.cfg.Format); err != nil {
		return nil, err
	}

	bufp := bc.bufPool.Get().(*[]byte)
	defer bc.bufPool.Put(bufp)
	buf := *bufp

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return goconverty.Convert(buf, bc.cfg.Width, bc.cfg.Height, bc.cfg.Format)
}

// writeResults is the single writer goroutine: it encodes successful
// conversions, resolves duplicate output names, and tallies the batch
// outcome.
func (bc *BatchConverter) writeResults(ctx context.Context) {
	for res := range withContext(ctx, bc.results) {
		if res.err != nil {
			logf(LogError, "Error converting %s: %v", res.path, res.err)
			bc.failed++
			continue
		}

		stem := strings.TrimSuffix(filepath.Base(res.path),
			filepath.Ext(res.path))
		outPath, err := bc.writer.write(stem, res.img)
		if err != nil {
			logf(LogError, "Error writing output for %s: %v", res.path, err)
			bc.failed++
			continue
		}

		logf(LogInfo, "Saved: %s", outPath)
		bc.converted++
	}
}
