package apitype

import "image"

type DisplayState int

const (
	StateEmpty DisplayState = iota
	StateShowing
)

func (s DisplayState) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateShowing:
		return "Showing"
	}
	return "Unknown"
}

// ScaledImage is the decoded and resized bitmap that backs the display
type ScaledImage struct {
	Image       *image.RGBA
	NativeSize  Size
	DisplaySize Size
}

func (s *ScaledImage) IsScaled() bool {
	return s != nil && s.NativeSize != s.DisplaySize
}
