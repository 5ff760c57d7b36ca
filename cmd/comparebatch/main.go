// Command comparebatch compares two directories of converted PNGs side by
// side. For every image present in both batches it scores sharpness and
// corner count, annotates each copy, and writes a combined comparison image
// into the results directory.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/GreatValueCreamSoda/goconverty"
	"github.com/spf13/pflag"
)

const (
	maxCorners   = 100
	qualityLevel = 0.01
	minDistance  = 10
)

func main() {
	log.SetFlags(log.LstdFlags)

	batch1 := pflag.String("batch1", "data/comparison/batch1",
		"first image directory")
	batch2 := pflag.String("batch2", "data/comparison/batch2",
		"second image directory")
	results := pflag.String("results", "data/comparison/results",
		"output directory")
	pflag.Parse()

	if err := run(*batch1, *batch2, *results); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(dir1, dir2, resultsDir string) error {
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return err
	}

	names, err := listPNGs(dir1)
	if err != nil {
		return err
	}

	for _, name := range names {
		path2 := filepath.Join(dir2, name)
		if _, err := os.Stat(path2); err != nil {
			log.Printf("Skipping %s: not found in %s", name, dir2)
			continue
		}

		log.Printf("Comparing %s...", name)
		outPath := filepath.Join(resultsDir, "compare_"+name)
		if err := compareImages(filepath.Join(dir1, name), path2, outPath); err != nil {
			log.Printf("Error comparing %s: %v", name, err)
			continue
		}
		log.Printf("Saved comparison to %s", outPath)
	}
	return nil
}

func listPNGs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// compareImages scores and annotates both images, equalizes their heights,
// and writes them concatenated side by side.
func compareImages(path1, path2, outPath string) error {
	img1, err := loadPNG(path1)
	if err != nil {
		return err
	}
	img2, err := loadPNG(path2)
	if err != nil {
		return err
	}

	res1 := annotate(img1, "Batch 1", goconverty.Sharpness(img1),
		goconverty.GoodFeaturesToTrack(img1, maxCorners, qualityLevel,
			minDistance))
	res2 := annotate(img2, "Batch 2", goconverty.Sharpness(img2),
		goconverty.GoodFeaturesToTrack(img2, maxCorners, qualityLevel,
			minDistance))

	if res1.Bounds().Dy() != res2.Bounds().Dy() {
		h := min(res1.Bounds().Dy(), res2.Bounds().Dy())
		res1 = scaleToHeight(res1, h)
		res2 = scaleToHeight(res2, h)
	}

	combined := hstack(res1, res2)

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, combined); err != nil {
		f.Close()
		os.Remove(outPath)
		return err
	}
	return f.Close()
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
