package guiapi

import (
	"github.com/AllenDang/giu"
	"vincit.fi/image-culler/api/apitype"
)

// TexturedImage pairs an uploaded texture with the file and size it was
// created from
type TexturedImage struct {
	Texture *giu.Texture
	Image   *apitype.ImageFile
	Width   float32
	Height  float32
}

func NewTexturedImage(image *apitype.ImageFile, size apitype.Size, texture *giu.Texture) *TexturedImage {
	return &TexturedImage{
		Texture: texture,
		Image:   image,
		Width:   float32(size.Width()),
		Height:  float32(size.Height()),
	}
}

func NewEmptyTexturedImage() *TexturedImage {
	return &TexturedImage{}
}

func (s *TexturedImage) IsLoaded() bool {
	return s != nil && s.Texture != nil
}

func (s *TexturedImage) IsSame(image *apitype.ImageFile) bool {
	return s != nil && s.Image != nil && s.Image.Equals(image)
}
