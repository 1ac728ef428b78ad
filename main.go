package main

import (
	"errors"
	"flag"
	"os"

	"github.com/AllenDang/giu"
	"github.com/OpenDiablo2/dialog"
	"vincit.fi/image-culler/backend"
	"vincit.fi/image-culler/common"
	"vincit.fi/image-culler/common/logger"
	gui "vincit.fi/image-culler/ui/giu"
)

const (
	eventBusQueueSize = 1000
	exitInvalidParams = 1
	exitCancelled     = 2
)

func main() {
	params, err := common.ParseParams()
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		logger.Error.Print("Invalid arguments: ", err)
		os.Exit(exitInvalidParams)
	}
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	if params.RootPath() == "" {
		directory, err := dialog.Directory().Title("Select image directory").Browse()
		if errors.Is(err, dialog.ErrCancelled) {
			logger.Info.Print("No directory selected")
			os.Exit(exitCancelled)
		} else if err != nil {
			logger.Error.Print("Could not open directory chooser: ", err)
			os.Exit(exitInvalidParams)
		}
		params.SetRootPath(directory)
	}

	if err := params.Validate(); err != nil {
		logger.Error.Print(err)
		dialog.Message("%s", err.Error()).Title("Image Culler").Error()
		os.Exit(exitInvalidParams)
	}
	logger.Info.Printf("Showing '*%s' images from '%s'", params.Pattern(), params.RootPath())

	brokers := backend.InitializeEventBrokers(eventBusQueueSize)
	stores := backend.InitializeStores(params)
	services := backend.InitializeServices(params, stores, brokers)
	defer backend.Shutdown(brokers, services, stores)

	ui := gui.NewUi(params, brokers.Broker)
	brokers.Broker.SetGuiRefresh(giu.Update)
	backend.ConnectServices(brokers, services)
	backend.ConnectGui(brokers, ui)

	ui.Run()
}
