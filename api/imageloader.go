package api

import (
	"image"

	"vincit.fi/image-culler/api/apitype"
)

type ImageLoader interface {
	LoadImage(*apitype.ImageFile) (image.Image, error)
	LoadImageScaled(*apitype.ImageFile, apitype.Size) (*apitype.ScaledImage, error)
	LoadExifData(*apitype.ImageFile) (*apitype.ExifData, error)
}
