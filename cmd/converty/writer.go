package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/deepteams/webp"
)

// outputWriter encodes converted images into one output directory. It is
// used from a single goroutine; the used map plus an on-disk check make
// collision-suffix naming deterministic even when the directory already
// holds files from an earlier run.
type outputWriter struct {
	dir      string
	ext      string
	webpOpts *webp.EncoderOptions // nil means PNG
	used     map[string]bool
}

func newOutputWriter(dir string, useWebP bool, quality float64) *outputWriter {
	w := &outputWriter{
		dir:  dir,
		ext:  ".png",
		used: make(map[string]bool),
	}
	if useWebP {
		w.ext = ".webp"
		opts := webp.DefaultOptions()
		opts.Quality = float32(quality)
		w.webpOpts = opts
	}
	return w
}

// write encodes img under the first free name derived from stem: "<stem>",
// then "<stem>_1", "<stem>_2", and so on.
func (w *outputWriter) write(stem string, img image.Image) (string, error) {
	path := w.claimPath(stem)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := w.encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func (w *outputWriter) claimPath(stem string) string {
	name := stem + w.ext
	for counter := 1; w.taken(name); counter++ {
		name = fmt.Sprintf("%s_%d%s", stem, counter, w.ext)
	}
	w.used[name] = true
	return filepath.Join(w.dir, name)
}

func (w *outputWriter) taken(name string) bool {
	if w.used[name] {
		return true
	}
	_, err := os.Stat(filepath.Join(w.dir, name))
	return err == nil
}

func (w *outputWriter) encode(f *os.File, img image.Image) error {
	if w.webpOpts != nil {
		return webp.Encode(f, img, w.webpOpts)
	}
	return png.Encode(f, img)
}
