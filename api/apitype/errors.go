package apitype

import "errors"

var (
	// ErrNoImages is returned when the candidate list has been exhausted
	ErrNoImages = errors.New("no images available")
	// ErrNoCurrentImage is returned when an action needs a selected image
	ErrNoCurrentImage = errors.New("no image is currently selected")
	// ErrDecode wraps failures to decode image data
	ErrDecode        = errors.New("could not decode image")
	ErrInvalidParams = errors.New("invalid parameters")
)
