package status

import (
	"fmt"
	"strings"

	"vincit.fi/image-culler/api"
)

const (
	NoImagesText = "No images left"
	LoadingText  = "Loading..."
)

// ImageText describes the current image for the status line
func ImageText(command *api.UpdateImageCommand) string {
	if command == nil || command.ImageFile == nil {
		return NoImagesText
	}

	parts := []string{command.ImageFile.Path()}
	if command.Image != nil {
		if command.Image.IsScaled() {
			parts = append(parts, fmt.Sprintf("%s -> %s", command.Image.NativeSize, command.Image.DisplaySize))
		} else {
			parts = append(parts, command.Image.NativeSize.String())
		}
	} else if command.LoadError != "" {
		parts = append(parts, "could not be loaded")
	}
	parts = append(parts, remainingText(command.Remaining))
	if summary := command.ExifData.Summary(); summary != "" {
		parts = append(parts, summary)
	}
	return strings.Join(parts, " | ")
}

func ScanText(command *api.ScanCompletedCommand) string {
	if command == nil {
		return LoadingText
	}
	text := fmt.Sprintf("Found %d images in %s", command.Total, command.Directory)
	if command.Skipped > 0 {
		text += fmt.Sprintf(" (%d paths skipped)", command.Skipped)
	}
	return text
}

func remainingText(remaining int) string {
	if remaining == 1 {
		return "1 image left"
	}
	return fmt.Sprintf("%d images left", remaining)
}
