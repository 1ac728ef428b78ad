package api

import (
	"vincit.fi/image-culler/api/apitype"
)

type ImageService interface {
	InitializeFromDirectory(*DirectoryCommand)

	RequestNextImage()
	RequestDeleteImage()
	RequestRotateImage()

	CurrentImage() *apitype.ImageFile
	State() apitype.DisplayState

	Close()
}

type ImageLibrary interface {
	GetImages() []*apitype.ImageFile
	GetTotalImages() int
	Contains(imageFile *apitype.ImageFile) bool

	PickRandom() (*apitype.ImageFile, error)
	RemoveImage(imageFile *apitype.ImageFile) bool
}
