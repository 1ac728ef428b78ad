package event

import (
	"fmt"
	"reflect"
	"sync"

	messagebus "github.com/vardius/message-bus"
	"vincit.fi/image-culler/api"
	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/common/logger"
)

type Broker struct {
	bus        messagebus.MessageBus
	guiRefresh func()
	mux        sync.RWMutex

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

// SetGuiRefresh registers a function that is called after every GUI callback
// so that the render loop picks up the changed state
func (s *Broker) SetGuiRefresh(refresh func()) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.guiRefresh = refresh
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panic("Could not subscribe ", topic, err)
	}
}

func (s *Broker) ConnectToGui(topic api.Topic, callback interface{}) {
	cb := func(params ...interface{}) {
		args := make([]reflect.Value, 0, len(params))
		for _, param := range params {
			args = append(args, reflect.ValueOf(param))
		}
		logger.Trace.Printf("Calling topic '%s' with: %s", topic, params)
		reflect.ValueOf(callback).Call(args)

		s.mux.RLock()
		refresh := s.guiRefresh
		s.mux.RUnlock()
		if refresh != nil {
			refresh()
		}
	}
	err := s.bus.Subscribe(string(topic), cb)
	if err != nil {
		logger.Error.Panic("Could not subscribe ", topic, err)
	}
}

func (s *Broker) SendToTopic(topic api.Topic) {
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := message
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}

func (s *Broker) Close() {
	for _, topic := range []api.Topic{
		api.DirectoryChanged, api.ScanCompleted,
		api.ImageRequestNext, api.ImageRequestDelete, api.ImageRequestRotate,
		api.ImageCurrentUpdated, api.ImageListEmpty, api.ShowError,
	} {
		s.bus.Close(string(topic))
	}
}
