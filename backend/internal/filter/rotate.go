package filter

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"vincit.fi/image-culler/api"
	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/common/logger"
	"vincit.fi/image-culler/common/util"
)

const jpegQuality = 95

// ImageRotate rotates the pixels of the file clockwise and writes them back
// in the format implied by the file extension
type ImageRotate struct {
	clockwise   int
	imageLoader api.ImageLoader

	apitype.ImageOperation
}

func NewImageRotate(clockwise int, imageLoader api.ImageLoader) apitype.ImageOperation {
	return &ImageRotate{
		clockwise:   normalizeAngle(clockwise),
		imageLoader: imageLoader,
	}
}

func (s *ImageRotate) Apply(imageFile *apitype.ImageFile) error {
	if s.clockwise == 0 {
		return nil
	}

	format, err := imaging.FormatFromFilename(imageFile.Path())
	if err != nil {
		return err
	}

	img, err := s.imageLoader.LoadImage(imageFile)
	if err != nil {
		return err
	}

	logger.Debug.Printf("Rotate %s %d degrees clockwise", imageFile.Path(), s.clockwise)
	rotated := RotateClockwise(img, s.clockwise)

	return util.ReplaceFile(imageFile.Path(), func(writer io.Writer) error {
		return imaging.Encode(writer, rotated, format, imaging.JPEGQuality(jpegQuality))
	})
}

func (s *ImageRotate) Kind() apitype.OperationKind {
	return apitype.OperationRotate
}

func (s *ImageRotate) String() string {
	return fmt.Sprintf("Rotate %d", s.clockwise)
}

// RotateClockwise supports right angles only so that no pixels get resampled
func RotateClockwise(img image.Image, clockwise int) image.Image {
	switch normalizeAngle(clockwise) {
	case 90:
		return imaging.Rotate270(img)
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

func normalizeAngle(angle int) int {
	normalized := ((angle % 360) + 360) % 360
	return normalized - normalized%90
}
