package apitype

import (
	"fmt"

	"vincit.fi/image-culler/common/logger"
)

type OperationKind string

const (
	OperationRemove OperationKind = "remove"
	OperationRotate OperationKind = "rotate"
)

type ImageOperation interface {
	Apply(imageFile *ImageFile) error
	Kind() OperationKind
	String() string
}

type ImageOperationGroup struct {
	imageFile  *ImageFile
	operations []ImageOperation
}

func NewImageOperationGroup(imageFile *ImageFile, operations ...ImageOperation) *ImageOperationGroup {
	return &ImageOperationGroup{
		imageFile:  imageFile,
		operations: operations,
	}
}

func (s *ImageOperationGroup) ImageFile() *ImageFile {
	return s.imageFile
}

func (s *ImageOperationGroup) Operations() []ImageOperation {
	return s.operations
}

// Apply runs the operations in order and stops at the first failure
func (s *ImageOperationGroup) Apply() error {
	if !s.imageFile.IsValid() {
		return ErrNoCurrentImage
	}
	for _, operation := range s.operations {
		logger.Debug.Printf("Applying '%s' to %s", operation, s.imageFile)
		if err := operation.Apply(s.imageFile); err != nil {
			return fmt.Errorf("%s %s: %w", operation, s.imageFile.FileName(), err)
		}
	}
	return nil
}
