package api

import (
	"vincit.fi/image-culler/api/apitype"
)

type ErrorCommand struct {
	Message string
}

type DirectoryCommand struct {
	Directory string
	Pattern   string
}

type ScanCompletedCommand struct {
	Directory string
	Total     int
	Skipped   int
}

// UpdateImageCommand carries everything the GUI needs to show the current
// selection. Image is nil when the file could not be decoded.
type UpdateImageCommand struct {
	ImageFile *apitype.ImageFile
	Image     *apitype.ScaledImage
	ExifData  *apitype.ExifData
	Remaining int
	LoadError string
}

type Gui interface {
	SetCurrentImage(*UpdateImageCommand)
	ClearImage()
	SetScanStatus(*ScanCompletedCommand)
	ShowError(*ErrorCommand)
	Run()
}
