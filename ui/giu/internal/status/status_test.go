package status

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"vincit.fi/image-culler/api"
	"vincit.fi/image-culler/api/apitype"
)

func TestImageText(t *testing.T) {
	imageFile := apitype.NewImageFile("/photos", "a.jpg")

	tests := []struct {
		name     string
		command  *api.UpdateImageCommand
		expected string
	}{
		{
			name:     "No command",
			command:  nil,
			expected: NoImagesText,
		},
		{
			name: "Scaled",
			command: &api.UpdateImageCommand{
				ImageFile: imageFile,
				Image: &apitype.ScaledImage{
					Image:       image.NewRGBA(image.Rect(0, 0, 700, 350)),
					NativeSize:  apitype.SizeOf(1000, 500),
					DisplaySize: apitype.SizeOf(700, 350),
				},
				Remaining: 3,
			},
			expected: "/photos/a.jpg | 1000x500 -> 700x350 | 3 images left",
		},
		{
			name: "Not scaled",
			command: &api.UpdateImageCommand{
				ImageFile: imageFile,
				Image: &apitype.ScaledImage{
					Image:       image.NewRGBA(image.Rect(0, 0, 300, 300)),
					NativeSize:  apitype.SizeOf(300, 300),
					DisplaySize: apitype.SizeOf(300, 300),
				},
				Remaining: 1,
			},
			expected: "/photos/a.jpg | 300x300 | 1 image left",
		},
		{
			name: "Load error",
			command: &api.UpdateImageCommand{
				ImageFile: imageFile,
				LoadError: "broken",
				Remaining: 2,
			},
			expected: "/photos/a.jpg | could not be loaded | 2 images left",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImageText(tt.command))
		})
	}
}

func TestScanText(t *testing.T) {
	a := assert.New(t)

	a.Equal(LoadingText, ScanText(nil))
	a.Equal("Found 3 images in /photos", ScanText(&api.ScanCompletedCommand{Directory: "/photos", Total: 3}))
	a.Equal("Found 0 images in /photos (2 paths skipped)",
		ScanText(&api.ScanCompletedCommand{Directory: "/photos", Total: 0, Skipped: 2}))
}
