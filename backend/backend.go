package backend

import (
	"math/rand"
	"os/user"
	"time"

	"vincit.fi/image-culler/api"
	"vincit.fi/image-culler/backend/internal/database"
	"vincit.fi/image-culler/backend/internal/filter"
	"vincit.fi/image-culler/backend/internal/imageloader"
	"vincit.fi/image-culler/backend/internal/library"
	"vincit.fi/image-culler/common"
	"vincit.fi/image-culler/common/event"
	"vincit.fi/image-culler/common/logger"
)

type Stores struct {
	Journal api.OperationJournal
}

func (s *Stores) Close() {
	s.Journal.Close()
}

type Services struct {
	ImageService  api.ImageService
	FilterService *filter.FilterService
	ImageLoader   api.ImageLoader
}

func (s *Services) Close() {
	s.ImageService.Close()
}

type Brokers struct {
	Broker *event.Broker
}

func (s *Brokers) Close() {
	s.Broker.Close()
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

// InitializeStores opens the operation journal in the user's home folder.
// A journal that cannot be opened is not fatal; operations are then only
// logged.
func InitializeStores(params *common.Params) *Stores {
	logger.Debug.Printf("Initialize stores...")
	if !params.JournalEnabled() {
		logger.Info.Print("Operation journal disabled")
		return &Stores{Journal: api.NoopJournal{}}
	}

	currentUser, err := user.Current()
	if err != nil {
		logger.Warn.Print("Cannot resolve user home directory, journal disabled ", err)
		return &Stores{Journal: api.NoopJournal{}}
	}

	homeDirDb := database.NewDatabase()
	if err := homeDirDb.InitializeForDirectory(currentUser.HomeDir, database.JournalFileName); err != nil {
		logger.Warn.Print("Error opening journal database, journal disabled ", err)
		return &Stores{Journal: api.NoopJournal{}}
	}
	if _, err := homeDirDb.Migrate(); err != nil {
		logger.Warn.Print("Error migrating journal database, journal disabled ", err)
		homeDirDb.Close()
		return &Stores{Journal: api.NoopJournal{}}
	}

	logger.Debug.Printf("Stores initialized")
	return &Stores{Journal: database.NewOperationStore(homeDirDb)}
}

func InitializeServices(params *common.Params, stores *Stores, brokers *Brokers) *Services {
	logger.Debug.Printf("Initialize services...")
	imageLoader := imageloader.NewImageLoader()
	filterService := filter.NewFilterService(imageLoader)

	seed := params.Seed()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug.Printf("Using random seed %d", seed)

	imageService := library.NewImageService(params, brokers.Broker, imageLoader, filterService,
		stores.Journal, rand.New(rand.NewSource(seed)))

	services := &Services{
		ImageService:  imageService,
		FilterService: filterService,
		ImageLoader:   imageLoader,
	}
	logger.Debug.Printf("Services initialized")
	return services
}

// ConnectServices subscribes the backend services to the requests sent by
// the GUI
func ConnectServices(brokers *Brokers, services *Services) {
	broker := brokers.Broker
	imageService := services.ImageService

	broker.Subscribe(api.DirectoryChanged, imageService.InitializeFromDirectory)
	broker.Subscribe(api.ImageRequestNext, imageService.RequestNextImage)
	broker.Subscribe(api.ImageRequestDelete, imageService.RequestDeleteImage)
	broker.Subscribe(api.ImageRequestRotate, imageService.RequestRotateImage)
}

// ConnectGui routes the backend updates to the GUI
func ConnectGui(brokers *Brokers, gui api.Gui) {
	broker := brokers.Broker

	broker.ConnectToGui(api.ImageCurrentUpdated, gui.SetCurrentImage)
	broker.ConnectToGui(api.ImageListEmpty, gui.ClearImage)
	broker.ConnectToGui(api.ScanCompleted, gui.SetScanStatus)
	broker.ConnectToGui(api.ShowError, gui.ShowError)
}

// Shutdown stops the bus first so no new requests arrive, then lets the
// services finish the request in progress before the journal is closed
func Shutdown(brokers *Brokers, services *Services, stores *Stores) {
	logger.Debug.Printf("Shutting down...")
	brokers.Close()
	services.Close()
	stores.Close()
	logger.Debug.Printf("Shut down")
}
