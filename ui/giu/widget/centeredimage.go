package widget

import (
	"github.com/AllenDang/giu"
	"vincit.fi/image-culler/ui/giu/internal/guiapi"
)

// CenteredImageWidget draws the texture at its own size in the middle of
// an area of fixed size. The area keeps its size when there is no texture
// so that the buttons and the status line do not jump around.
type CenteredImageWidget struct {
	texturedImage *guiapi.TexturedImage
	areaWidth     float32
	areaHeight    float32
	message       string
}

func CenteredImage(image *guiapi.TexturedImage, areaWidth float32, areaHeight float32) *CenteredImageWidget {
	return &CenteredImageWidget{
		texturedImage: image,
		areaWidth:     areaWidth,
		areaHeight:    areaHeight,
	}
}

// Message is shown in place of the image when no texture is loaded
func (s *CenteredImageWidget) Message(message string) *CenteredImageWidget {
	s.message = message
	return s
}

func (s *CenteredImageWidget) Build() {
	if !s.texturedImage.IsLoaded() {
		giu.Column(
			giu.Dummy(s.areaWidth, s.areaHeight/2),
			giu.Row(giu.Dummy(s.areaWidth/2-60, 20), giu.Label(s.message)),
			giu.Dummy(s.areaWidth, s.areaHeight/2-20),
		).Build()
		return
	}

	width := s.texturedImage.Width
	height := s.texturedImage.Height
	offsetW := (s.areaWidth - width) / 2.0
	offsetH := (s.areaHeight - height) / 2.0

	giu.Column(
		giu.Dummy(s.areaWidth, offsetH),
		giu.Row(giu.Dummy(offsetW, height), giu.Image(s.texturedImage.Texture).Size(width, height)),
		giu.Dummy(s.areaWidth, offsetH),
	).Build()
}
