package cache

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/specimen-tools/wingpoints/internal/mask"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStorePutGet(t *testing.T) {
	store := openTestStore(t)

	payload := []byte(`{"outer_pix_l":{"row":2,"col":3}}`)
	if err := store.Put("abc123", payload); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := store.Get("abc123")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload: got %q, want %q", got, payload)
	}
}

func TestStoreMiss(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("expected cache miss")
	}
}

func TestStoreReplace(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("key", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put("key", []byte("new")); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.Get("key")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(got) != "new" {
		t.Errorf("payload: got %q, want %q", got, "new")
	}

	n, err := store.Len()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("entries: got %d, want 1", n)
	}
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	first, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Put("key", []byte("payload")); err != nil {
		t.Fatal(err)
	}
	first.Close()

	second, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()

	got, ok, err := second.Get("key")
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if string(got) != "payload" {
		t.Errorf("payload: got %q", got)
	}
}

func testImage(seed uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: seed, G: uint8(x), B: uint8(y), A: 255})
		}
	}
	return img
}

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint(testImage(7), 100)
	b := Fingerprint(testImage(7), 100)
	if a != b {
		t.Error("identical inputs must fingerprint identically")
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	base := Fingerprint(testImage(7), 100)

	if Fingerprint(testImage(8), 100) == base {
		t.Error("pixel change should change the fingerprint")
	}
	if Fingerprint(testImage(7), 101) == base {
		t.Error("parameter change should change the fingerprint")
	}
}

func TestFingerprintIgnoresEncoding(t *testing.T) {
	// The same pixels presented through a different image type hash the
	// same, since the fingerprint reads normalized pixel values.
	rgba := testImage(0)
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	grayRGBA := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			gray.SetGray(x, y, color.Gray{Y: 50})
			grayRGBA.Set(x, y, color.RGBA{R: 50, G: 50, B: 50, A: 255})
		}
	}

	if Fingerprint(gray, 10) != Fingerprint(grayRGBA, 10) {
		t.Error("equal pixel content must fingerprint equally across image types")
	}
	if Fingerprint(gray, 10) == Fingerprint(rgba, 10) {
		t.Error("different pixel content must not collide")
	}
}

func TestMaskFingerprint(t *testing.T) {
	a := mask.New(10, 10)
	a.Set(3, 4, true)

	b := mask.New(10, 10)
	b.Set(3, 4, true)

	if MaskFingerprint(a) != MaskFingerprint(b) {
		t.Error("equal masks must fingerprint equally")
	}

	b.Set(0, 0, true)
	if MaskFingerprint(a) == MaskFingerprint(b) {
		t.Error("different masks must not collide")
	}
}
