package filter

import (
	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/common/util"
)

type ImageRemove struct {
	apitype.ImageOperation
}

func NewImageRemove() apitype.ImageOperation {
	return &ImageRemove{}
}

func (s *ImageRemove) Apply(imageFile *apitype.ImageFile) error {
	return util.RemoveFile(imageFile.Path())
}

func (s *ImageRemove) Kind() apitype.OperationKind {
	return apitype.OperationRemove
}

func (s *ImageRemove) String() string {
	return "Remove"
}
