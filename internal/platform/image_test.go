package platform

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solidImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 120, B: 200, A: 255})
		}
	}
	return img
}

func TestIsSupportedImage(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"cat.png", true},
		{"cat.JPG", true},
		{"cat.jpeg", true},
		{"cat.bmp", true},
		{"cat.gif", false},
		{"cat", false},
		{"dir/cat.webp", false},
	}

	for _, tt := range tests {
		if got := IsSupportedImage(tt.path); got != tt.want {
			t.Errorf("IsSupportedImage(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bg.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp image: %v", err)
	}
	if err := png.Encode(f, solidImage(40, 20)); err != nil {
		t.Fatalf("encode temp image: %v", err)
	}
	f.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 20 {
		t.Errorf("loaded image is %dx%d, want 40x20", img.Bounds().Dx(), img.Bounds().Dy())
	}

	if _, err := LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("LoadImage on a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0644); err != nil {
		t.Fatalf("write bad image: %v", err)
	}
	if _, err := LoadImage(bad); err == nil {
		t.Error("LoadImage on garbage data should fail")
	}
}

func TestAspectRatio(t *testing.T) {
	if got := AspectRatio(solidImage(200, 100)); got != 2.0 {
		t.Errorf("AspectRatio(200x100) = %v, want 2.0", got)
	}
	if got := AspectRatio(nil); got != 0 {
		t.Errorf("AspectRatio(nil) = %v, want 0", got)
	}
	if got := AspectRatio(image.NewRGBA(image.Rect(0, 0, 0, 0))); got != 0 {
		t.Errorf("AspectRatio of empty image = %v, want 0", got)
	}
}

func TestCoverScaleAlwaysCoversTarget(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		dstW, dstH int
	}{
		{"wide source, tall target", 400, 100, 100, 200},
		{"tall source, wide target", 100, 400, 300, 100},
		{"upscale", 40, 20, 200, 100},
		{"exact fit", 200, 100, 200, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoverScale(solidImage(tt.srcW, tt.srcH), tt.dstW, tt.dstH)
			if got.Bounds().Dx() != tt.dstW || got.Bounds().Dy() != tt.dstH {
				t.Errorf("CoverScale output is %dx%d, want %dx%d",
					got.Bounds().Dx(), got.Bounds().Dy(), tt.dstW, tt.dstH)
			}
		})
	}
}

func TestCoverScaleDegenerateInput(t *testing.T) {
	img := solidImage(10, 10)
	if got := CoverScale(img, 0, 100); got != img {
		t.Error("CoverScale with zero target should return the input unchanged")
	}
	if got := CoverScale(nil, 100, 100); got != nil {
		t.Error("CoverScale(nil) should return nil")
	}
}
