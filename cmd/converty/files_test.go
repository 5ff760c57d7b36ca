package main

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte{0}, 0o644); err != nil {
		t.Fatal(err)
	}
}

func Test_collectInputs_WalksRecursivelySorted(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.yuv"))
	touch(t, filepath.Join(dir, "a.raw"))
	touch(t, filepath.Join(dir, "sub", "c.bin"))
	touch(t, filepath.Join(dir, "ignored.txt"))
	touch(t, filepath.Join(dir, "sub", "ignored.png"))

	files, isFile, err := collectInputs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if isFile {
		t.Fatal("directory input reported as file")
	}

	want := []string{
		filepath.Join(dir, "a.raw"),
		filepath.Join(dir, "b.yuv"),
		filepath.Join(dir, "sub", "c.bin"),
	}
	if len(files) != len(want) {
		t.Fatalf("collectInputs = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("collectInputs[%d] = %s, want %s", i, files[i], want[i])
		}
	}
}

func Test_collectInputs_SingleFileAnyExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.dump")
	touch(t, path)

	files, isFile, err := collectInputs(path)
	if err != nil {
		t.Fatal(err)
	}
	if !isFile {
		t.Fatal("file input not reported as file")
	}
	if len(files) != 1 || files[0] != path {
		t.Fatalf("collectInputs = %v, want [%s]", files, path)
	}
}

func Test_collectInputs_MissingPath(t *testing.T) {
	if _, _, err := collectInputs(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("collectInputs passed on a missing path")
	}
}
