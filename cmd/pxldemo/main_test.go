package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pxlforge/pxl/memory"
)

func TestRunWritesImage(t *testing.T) {
	for _, bits := range []int{16, 24, 32} {
		path := filepath.Join(t.TempDir(), "demo.png")
		if err := run(memory.Heap{}, 640, 400, bits, 1, path); err != nil {
			t.Fatalf("run(bits=%d) = %v", bits, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("bits=%d: output missing: %v", bits, err)
		}
	}
}

func TestAllocators(t *testing.T) {
	names := []string{"heap", "pool"}
	if runtime.GOOS != "windows" && runtime.GOOS != "js" && runtime.GOOS != "wasip1" {
		names = append(names, "mmap")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			a, err := allocatorFor(name)
			if err != nil {
				t.Fatal(err)
			}
			path := filepath.Join(t.TempDir(), "demo.bmp")
			if err := run(a, 320, 200, 24, 2, path); err != nil {
				t.Fatalf("run = %v", err)
			}
		})
	}
	if _, err := allocatorFor("stack"); err == nil {
		t.Error("allocatorFor(stack) succeeded")
	}
}

func TestRunRejectsBadDepth(t *testing.T) {
	if err := run(memory.Heap{}, 10, 10, 8, 1, filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("run with 8 bits succeeded")
	}
}
