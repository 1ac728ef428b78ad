package api

type Topic string

const (
	DirectoryChanged Topic = "event-directory-changed"
	ScanCompleted    Topic = "event-scan-completed"

	ImageRequestNext   Topic = "event-image-request-next"
	ImageRequestDelete Topic = "event-image-request-delete"
	ImageRequestRotate Topic = "event-image-request-rotate"

	ImageCurrentUpdated Topic = "event-image-current-updated"
	ImageListEmpty      Topic = "event-image-list-empty"

	ShowError Topic = "event-show-error"
)
