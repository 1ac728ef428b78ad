package library

import (
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"vincit.fi/image-culler/api"
	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/backend/internal/filter"
	"vincit.fi/image-culler/backend/internal/imageloader"
	"vincit.fi/image-culler/common"
)

type sentMessage struct {
	topic   api.Topic
	command apitype.Command
}

type StubSender struct {
	messages []sentMessage
	errors   []string
	mux      sync.Mutex

	api.Sender
}

func (s *StubSender) SendToTopic(topic api.Topic) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.messages = append(s.messages, sentMessage{topic: topic})
}

func (s *StubSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.messages = append(s.messages, sentMessage{topic: topic, command: command})
}

func (s *StubSender) SendError(message string, err error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if err != nil {
		message = message + ": " + err.Error()
	}
	s.errors = append(s.errors, message)
}

func (s *StubSender) lastMessage() sentMessage {
	s.mux.Lock()
	defer s.mux.Unlock()
	if len(s.messages) == 0 {
		return sentMessage{}
	}
	return s.messages[len(s.messages)-1]
}

func (s *StubSender) lastImageUpdate() *api.UpdateImageCommand {
	s.mux.Lock()
	defer s.mux.Unlock()
	for i := len(s.messages) - 1; i >= 0; i-- {
		if command, ok := s.messages[i].command.(*api.UpdateImageCommand); ok {
			return command
		}
	}
	return nil
}

func (s *StubSender) errorCount() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.errors)
}

type journalEntry struct {
	kind apitype.OperationKind
	path string
	err  error
}

type StubJournal struct {
	entries []journalEntry

	api.OperationJournal
}

func (s *StubJournal) Record(kind apitype.OperationKind, imageFile *apitype.ImageFile, operationErr error) {
	s.entries = append(s.entries, journalEntry{kind: kind, path: imageFile.Path(), err: operationErr})
}

func (s *StubJournal) Close() {}

func writeTestImage(t *testing.T, path string, width int, height int) {
	t.Helper()
	require.Nil(t, os.MkdirAll(filepath.Dir(path), 0755))
	img := imaging.New(width, height, color.NRGBA{R: 100, G: 150, B: 200, A: 255})
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	require.Nil(t, imaging.Save(img, path))
}

func writeTestFile(t *testing.T, path string, content string) {
	t.Helper()
	require.Nil(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestService(params *common.Params, seed int64) (*Service, *StubSender, *StubJournal) {
	sender := &StubSender{}
	journal := &StubJournal{}
	loader := imageloader.NewImageLoader()
	service := NewImageService(params, sender, loader, filter.NewFilterService(loader), journal, rand.New(rand.NewSource(seed)))
	return service, sender, journal
}
