package backend

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/image-culler/api"
	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/common"
)

type recordingJournal struct {
	entries int
	closed  bool
}

func (s *recordingJournal) Record(apitype.OperationKind, *apitype.ImageFile, error) {
	if s.closed {
		panic("journal used after close")
	}
	s.entries++
}

func (s *recordingJournal) Close() {
	s.closed = true
}

func TestShutdown(t *testing.T) {
	a := assert.New(t)
	root := t.TempDir()
	require.Nil(t, imaging.Save(imaging.New(10, 10, color.NRGBA{R: 200, A: 255}), filepath.Join(root, "a.jpg")))

	params := common.NewDefaultParams(root)
	journal := &recordingJournal{}
	brokers := InitializeEventBrokers(10)
	stores := &Stores{Journal: journal}
	services := InitializeServices(params, stores, brokers)
	ConnectServices(brokers, services)

	services.ImageService.InitializeFromDirectory(&api.DirectoryCommand{Directory: root, Pattern: ".jpg"})
	require.Equal(t, apitype.StateShowing, services.ImageService.State())

	Shutdown(brokers, services, stores)
	a.True(journal.closed)

	services.ImageService.RequestDeleteImage()

	a.Equal(0, journal.entries)
	_, err := os.Stat(filepath.Join(root, "a.jpg"))
	a.Nil(err)
}
