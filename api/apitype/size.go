package apitype

import (
	"fmt"
	"image"
	"math"
)

type Size struct {
	width  int
	height int
}

func (s Size) Height() int {
	return s.height
}

func (s Size) Width() int {
	return s.width
}

func (s Size) IsValid() bool {
	return s.width > 0 && s.height > 0
}

func (s Size) AspectRatio() float64 {
	if s.height == 0 {
		return 0
	}
	return float64(s.width) / float64(s.height)
}

// Fits returns true if neither dimension exceeds the bound
func (s Size) Fits(bound Size) bool {
	return s.width <= bound.width && s.height <= bound.height
}

func (s Size) Rectangle() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

// FitWithin scales native down so that it fits inside bound while keeping
// the aspect ratio. Images that already fit are never upscaled.
// The side that is relatively wider than the bound gets pinned to it, which
// for a square bound means width when the image is wider than tall.
func FitWithin(native Size, bound Size) Size {
	if !native.IsValid() || !bound.IsValid() || native.Fits(bound) {
		return native
	}

	aspectRatio := native.AspectRatio()
	var newWidth, newHeight int
	if aspectRatio > bound.AspectRatio() {
		newWidth = bound.width
		newHeight = int(math.Round(float64(newWidth) / aspectRatio))
	} else {
		newHeight = bound.height
		newWidth = int(math.Round(float64(newHeight) * aspectRatio))
	}

	return Size{
		width:  atLeastOne(newWidth),
		height: atLeastOne(newHeight),
	}
}

func atLeastOne(value int) int {
	if value < 1 {
		return 1
	}
	return value
}
