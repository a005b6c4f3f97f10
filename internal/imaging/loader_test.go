package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 40), A: 255})
		}
	}

	path := filepath.Join(dir, "photo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return path
}

func TestImageCacheLoad(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())
	cache := NewImageCache()

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("dimensions: got %dx%d, want 6x4", b.Dx(), b.Dy())
	}

	// Second load is served from the cache even if the file disappears.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached load failed: %v", err)
	}

	cache.Evict(path)
	if _, err := cache.Load(path); err == nil {
		t.Error("expected error after eviction of a removed file")
	}
}

func TestImageCacheLoadMissing(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestImageCacheClear(t *testing.T) {
	path := writeTestPNG(t, t.TempDir())
	cache := NewImageCache()

	if _, err := cache.Load(path); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	cache.Clear()
	if _, err := cache.Load(path); err == nil {
		t.Error("expected miss after Clear")
	}
}
