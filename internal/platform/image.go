package platform

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "github.com/jsummers/gobmp"
	"github.com/nfnt/resize"
)

// Supported background image extensions (lower case, with dot).
var SupportedImageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// IsSupportedImage reports whether the path has a supported image extension.
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedImageExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// LoadImage reads and decodes a background image from disk.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// AspectRatio returns the image's natural width/height ratio, or 0 for a
// degenerate image that cannot drive an aspect lock.
func AspectRatio(img image.Image) float64 {
	if img == nil {
		return 0
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return 0
	}
	return float64(bounds.Dx()) / float64(bounds.Dy())
}

// CoverScale scales the image to the smallest size that fully covers
// width x height while keeping its aspect ratio, then center-crops the
// overflow. The result is rebuilt on every window resize, so it uses
// nearest-neighbour to keep drags responsive.
func CoverScale(img image.Image, width, height int) image.Image {
	if img == nil || width <= 0 || height <= 0 {
		return img
	}
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return img
	}

	// Scale by the larger of the two ratios so both dimensions cover.
	scaleW := float64(width) / float64(srcW)
	scaleH := float64(height) / float64(srcH)
	scale := scaleW
	if scaleH > scale {
		scale = scaleH
	}

	scaledW := uint(float64(srcW)*scale + 0.5)
	scaledH := uint(float64(srcH)*scale + 0.5)
	if scaledW < uint(width) {
		scaledW = uint(width)
	}
	if scaledH < uint(height) {
		scaledH = uint(height)
	}

	scaled := resize.Resize(scaledW, scaledH, img, resize.NearestNeighbor)

	// Center-crop to the exact target.
	sb := scaled.Bounds()
	offsetX := (sb.Dx() - width) / 2
	offsetY := (sb.Dy() - height) / 2
	cropped := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(cropped, cropped.Bounds(), scaled, image.Pt(sb.Min.X+offsetX, sb.Min.Y+offsetY), draw.Src)
	return cropped
}
