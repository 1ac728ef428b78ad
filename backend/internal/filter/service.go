package filter

import (
	"fmt"

	"vincit.fi/image-culler/api"
	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/common/logger"
)

const rotateStep = 90

type Filter struct {
	kind      apitype.OperationKind
	operation apitype.ImageOperation
}

func (s *Filter) Operation() apitype.ImageOperation {
	return s.operation
}

type FilterService struct {
	filters map[apitype.OperationKind]*Filter
}

func NewFilterService(imageLoader api.ImageLoader) *FilterService {
	service := &FilterService{
		filters: map[apitype.OperationKind]*Filter{},
	}
	service.AddFilter(NewImageRemove())
	service.AddFilter(NewImageRotate(rotateStep, imageLoader))
	return service
}

func (s *FilterService) AddFilter(operation apitype.ImageOperation) {
	s.filters[operation.Kind()] = &Filter{
		kind:      operation.Kind(),
		operation: operation,
	}
}

func (s *FilterService) GetFilter(kind apitype.OperationKind) (*Filter, error) {
	if filter, ok := s.filters[kind]; ok {
		return filter, nil
	} else {
		return nil, fmt.Errorf("could not find filter '%s'", kind)
	}
}

// Apply runs the filters of the given kinds for the image in order
func (s *FilterService) Apply(imageFile *apitype.ImageFile, kinds ...apitype.OperationKind) error {
	var operations []apitype.ImageOperation
	for _, kind := range kinds {
		filter, err := s.GetFilter(kind)
		if err != nil {
			logger.Error.Print(err)
			return err
		}
		operations = append(operations, filter.Operation())
	}
	return apitype.NewImageOperationGroup(imageFile, operations...).Apply()
}
