package imageloader

import (
	"image"

	"vincit.fi/image-culler/api"
	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/common/imagereader"
	"vincit.fi/image-culler/common/logger"
)

func NewImageLoader() api.ImageLoader {
	logger.Debug.Printf("Initializing image loader...")
	loader := &LibJPEGImageLoader{}
	logger.Debug.Printf("Image loader initialized")
	return loader
}

type LibJPEGImageLoader struct {
	api.ImageLoader
}

func (s *LibJPEGImageLoader) LoadImage(imageFile *apitype.ImageFile) (image.Image, error) {
	if !imageFile.IsValid() {
		return nil, apitype.ErrNoCurrentImage
	}
	return imagereader.LoadImage(imageFile.Path())
}

func (s *LibJPEGImageLoader) LoadImageScaled(imageFile *apitype.ImageFile, size apitype.Size) (*apitype.ScaledImage, error) {
	if !imageFile.IsValid() {
		return nil, apitype.ErrNoCurrentImage
	}
	return imagereader.LoadScaledImage(imageFile.Path(), size)
}

// LoadExifData never fails for display purposes. Missing EXIF is common for
// PNG files and edited images.
func (s *LibJPEGImageLoader) LoadExifData(imageFile *apitype.ImageFile) (*apitype.ExifData, error) {
	data, err := apitype.LoadExifData(imageFile)
	if err != nil {
		logger.Trace.Printf("No EXIF data for %s: %s", imageFile, err)
	}
	return data, nil
}
