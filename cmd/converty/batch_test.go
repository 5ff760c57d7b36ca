package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeRaw dumps a flat UYVY frame of the given geometry.
func writeRaw(t *testing.T, path string, width, height int, fill byte) {
	t.Helper()
	buf := make([]byte, width*height*2)
	for i := range buf {
		buf[i] = fill
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatal(err)
	}
}

func Test_BatchConverter_ConvertsBatch(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	const w, h = 8, 4
	writeRaw(t, filepath.Join(inputDir, "one.raw"), w, h, 128)
	writeRaw(t, filepath.Join(inputDir, "two.yuv"), w, h, 200)
	// Wrong size: must be reported and skipped, not abort the batch.
	if err := os.WriteFile(filepath.Join(inputDir, "short.raw"),
		make([]byte, w*h*2-1), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Config{
		Input:       inputDir,
		OutputDir:   outputDir,
		Width:       w,
		Height:      h,
		FormatTag:   "uyvy",
		Workers:     2,
		WebPQuality: 90,
	}
	if err := cfg.Resolve(); err != nil {
		t.Fatal(err)
	}

	files, _, err := collectInputs(inputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("discovered %d files, want 3", len(files))
	}

	bc, err := NewBatchConverter(cfg, files)
	if err != nil {
		t.Fatal(err)
	}
	if err := bc.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	converted, failed := bc.Counts()
	if converted != 2 || failed != 1 {
		t.Fatalf("Counts() = (%d, %d), want (2, 1)", converted, failed)
	}

	for _, name := range []string{"one.png", "two.png"} {
		f, err := os.Open(filepath.Join(outputDir, name))
		if err != nil {
			t.Fatalf("missing output %s: %v", name, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("output %s does not decode: %v", name, err)
		}
		if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
			t.Fatalf("output %s is %dx%d, want %dx%d", name,
				img.Bounds().Dx(), img.Bounds().Dy(), w, h)
		}
	}

	if _, err := os.Stat(filepath.Join(outputDir, "short.png")); err == nil {
		t.Fatal("mismatched file produced an output image")
	}
}

func Test_BatchConverter_DeduplicatesAcrossSubdirs(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	const w, h = 4, 2
	writeRaw(t, filepath.Join(inputDir, "frame.raw"), w, h, 128)
	if err := os.MkdirAll(filepath.Join(inputDir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeRaw(t, filepath.Join(inputDir, "sub", "frame.raw"), w, h, 128)

	cfg := Config{
		OutputDir:   outputDir,
		Width:       w,
		Height:      h,
		FormatTag:   "uyvy",
		Workers:     1,
		WebPQuality: 90,
	}
	if err := cfg.Resolve(); err != nil {
		t.Fatal(err)
	}

	files, _, err := collectInputs(inputDir)
	if err != nil {
		t.Fatal(err)
	}

	bc, err := NewBatchConverter(cfg, files)
	if err != nil {
		t.Fatal(err)
	}
	if err := bc.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"frame.png", "frame_1.png"} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); err != nil {
			t.Fatalf("missing output %s: %v", name, err)
		}
	}
}

func Test_BatchConverter_CancelStopsRun(t *testing.T) {
	inputDir := t.TempDir()
	const w, h = 4, 2
	writeRaw(t, filepath.Join(inputDir, "frame.raw"), w, h, 128)

	cfg := Config{
		OutputDir:   t.TempDir(),
		Width:       w,
		Height:      h,
		FormatTag:   "uyvy",
		Workers:     1,
		WebPQuality: 90,
	}
	if err := cfg.Resolve(); err != nil {
		t.Fatal(err)
	}

	bc, err := NewBatchConverter(cfg, []string{
		filepath.Join(inputDir, "frame.raw")})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := bc.Run(ctx); err != context.Canceled {
		t.Fatalf("Run on canceled context = %v, want context.Canceled", err)
	}
}
