package library

import (
	"errors"
	"io/fs"
	"math/rand"
	"sync"

	"vincit.fi/image-culler/api"
	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/backend/internal/filter"
	"vincit.fi/image-culler/common"
	"vincit.fi/image-culler/common/logger"
)

// Service owns the candidate list and the current selection. Every request
// runs to completion while holding the lock so that a pick never observes
// a half done delete.
type Service struct {
	sender        api.Sender
	imageLoader   api.ImageLoader
	filterService *filter.FilterService
	journal       api.OperationJournal
	random        *rand.Rand
	maxSize       apitype.Size
	afterRotate   common.AfterRotate

	library *ImageLibrary
	current *apitype.ImageFile
	closed  bool
	mux     sync.Mutex

	api.ImageService
}

func NewImageService(params *common.Params, sender api.Sender, imageLoader api.ImageLoader,
	filterService *filter.FilterService, journal api.OperationJournal, random *rand.Rand) *Service {
	if journal == nil {
		journal = api.NoopJournal{}
	}
	return &Service{
		sender:        sender,
		imageLoader:   imageLoader,
		filterService: filterService,
		journal:       journal,
		random:        random,
		maxSize:       params.MaxSize(),
		afterRotate:   params.AfterRotate(),
		library:       NewImageLibrary(nil, random),
	}
}

func (s *Service) InitializeFromDirectory(command *api.DirectoryCommand) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.isClosed() {
		return
	}

	result := ScanDirectory(command.Directory, command.Pattern)
	s.library = NewImageLibrary(result.Files, s.random)
	s.current = nil

	if result.RootFailed() {
		s.sender.SendError("Could not read directory '"+command.Directory+"'", result.Diagnostics[0].Err)
	}
	s.sender.SendCommandToTopic(api.ScanCompleted, &api.ScanCompletedCommand{
		Directory: command.Directory,
		Total:     len(result.Files),
		Skipped:   len(result.Diagnostics),
	})

	s.showNextImage()
}

func (s *Service) RequestNextImage() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.isClosed() {
		return
	}

	if s.current == nil {
		logger.Debug.Print("No images left to show")
		return
	}
	s.showNextImage()
}

func (s *Service) RequestDeleteImage() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.isClosed() {
		return
	}

	if s.current == nil {
		logger.Info.Print("No image is currently loaded, nothing to delete")
		return
	}

	imageFile := s.current
	err := s.filterService.Apply(imageFile, apitype.OperationRemove)
	s.journal.Record(apitype.OperationRemove, imageFile, err)

	if err != nil && errors.Is(err, fs.ErrNotExist) {
		s.sender.SendError("Image has already been removed from disk", err)
	} else if err != nil {
		s.sender.SendError("Could not delete image", err)
		return
	}

	s.library.RemoveImage(imageFile)
	s.current = nil
	s.showNextImage()
}

func (s *Service) RequestRotateImage() {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.isClosed() {
		return
	}

	if s.current == nil {
		logger.Info.Print("No image is currently loaded, nothing to rotate")
		return
	}

	imageFile := s.current
	err := s.filterService.Apply(imageFile, apitype.OperationRotate)
	s.journal.Record(apitype.OperationRotate, imageFile, err)
	if err != nil {
		s.sender.SendError("Error rotating image", err)
		return
	}

	if s.afterRotate == common.ShowSameAfterRotate {
		s.showImage(imageFile)
	} else {
		s.showNextImage()
	}
}

func (s *Service) CurrentImage() *apitype.ImageFile {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.current
}

func (s *Service) State() apitype.DisplayState {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.current != nil {
		return apitype.StateShowing
	}
	return apitype.StateEmpty
}

func (s *Service) GetTotalImages() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.library.GetTotalImages()
}

// Close waits for the request in progress and ignores every request after
// that, so the journal can be closed safely once Close returns
func (s *Service) Close() {
	s.mux.Lock()
	defer s.mux.Unlock()
	logger.Debug.Print("Closing image service")
	s.closed = true
}

func (s *Service) isClosed() bool {
	if s.closed {
		logger.Debug.Print("Image service closed, ignoring request")
	}
	return s.closed
}

func (s *Service) showNextImage() {
	imageFile, err := s.library.PickRandom()
	if err != nil {
		logger.Info.Print("No images left")
		s.current = nil
		s.sender.SendToTopic(api.ImageListEmpty)
		return
	}
	s.showImage(imageFile)
}

// showImage selects the image even if it cannot be decoded so that a broken
// file can still be deleted
func (s *Service) showImage(imageFile *apitype.ImageFile) {
	s.current = imageFile

	command := &api.UpdateImageCommand{
		ImageFile: imageFile,
		Remaining: s.library.GetTotalImages(),
	}
	if scaled, err := s.imageLoader.LoadImageScaled(imageFile, s.maxSize); err != nil {
		command.LoadError = err.Error()
		s.sender.SendError("Could not load image", err)
	} else {
		command.Image = scaled
		command.ExifData, _ = s.imageLoader.LoadExifData(imageFile)
	}

	s.sender.SendCommandToTopic(api.ImageCurrentUpdated, command)
}
