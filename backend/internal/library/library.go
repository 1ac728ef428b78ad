package library

import (
	"math/rand"
	"sync"

	"vincit.fi/image-culler/api"
	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/common/logger"
)

// ImageLibrary is the list of images that can still be shown. It is filled
// once and only shrinks after that.
type ImageLibrary struct {
	images []*apitype.ImageFile
	random *rand.Rand
	mux    sync.RWMutex

	api.ImageLibrary
}

func NewImageLibrary(images []*apitype.ImageFile, random *rand.Rand) *ImageLibrary {
	imagesCopy := make([]*apitype.ImageFile, len(images))
	copy(imagesCopy, images)
	return &ImageLibrary{
		images: imagesCopy,
		random: random,
	}
}

func (s *ImageLibrary) GetImages() []*apitype.ImageFile {
	s.mux.RLock()
	defer s.mux.RUnlock()
	images := make([]*apitype.ImageFile, len(s.images))
	copy(images, s.images)
	return images
}

func (s *ImageLibrary) GetTotalImages() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.images)
}

func (s *ImageLibrary) Contains(imageFile *apitype.ImageFile) bool {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.indexOf(imageFile) >= 0
}

// PickRandom returns a uniformly random image. The same image can be picked
// again on subsequent calls.
func (s *ImageLibrary) PickRandom() (*apitype.ImageFile, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if len(s.images) == 0 {
		return nil, apitype.ErrNoImages
	}
	picked := s.images[s.random.Intn(len(s.images))]
	logger.Trace.Printf("Picked %s out of %d images", picked, len(s.images))
	return picked, nil
}

func (s *ImageLibrary) RemoveImage(imageFile *apitype.ImageFile) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	index := s.indexOf(imageFile)
	if index < 0 {
		return false
	}
	s.images = append(s.images[:index], s.images[index+1:]...)
	logger.Debug.Printf("Removed %s, %d images left", imageFile, len(s.images))
	return true
}

func (s *ImageLibrary) indexOf(imageFile *apitype.ImageFile) int {
	for i, image := range s.images {
		if image.Equals(imageFile) {
			return i
		}
	}
	return -1
}
