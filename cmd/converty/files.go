package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// supportedExtensions lists the raw dump extensions picked up when walking a
// directory. A file given directly on the command line is converted no
// matter its extension.
var supportedExtensions = []string{".raw", ".yuv", ".bin"}

func hasSupportedExtension(name string) bool {
	ext := filepath.Ext(name)
	for _, s := range supportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// collectInputs resolves an input path to the list of files to convert.
// A regular file becomes a single-element batch; a directory is walked
// recursively for supported extensions. The result is sorted so batch order
// and collision-suffix assignment are deterministic.
func collectInputs(path string) (files []string, isFile bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, err
	}
	if !info.IsDir() {
		return []string{path}, true, nil
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasSupportedExtension(d.Name()) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	sort.Strings(files)
	return files, false, nil
}
