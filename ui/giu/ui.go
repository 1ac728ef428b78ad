package gui

import (
	"sync"
	"time"

	"github.com/AllenDang/giu"
	"github.com/AllenDang/imgui-go"
	"github.com/go-gl/glfw/v3.3/glfw"
	"vincit.fi/image-culler/api"
	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/common"
	"vincit.fi/image-culler/common/logger"
	"vincit.fi/image-culler/ui/giu/internal/guiapi"
	"vincit.fi/image-culler/ui/giu/internal/input"
	"vincit.fi/image-culler/ui/giu/internal/status"
	"vincit.fi/image-culler/ui/giu/widget"
)

const (
	windowTitle  = "Image Culler"
	buttonWidth  = 120
	buttonHeight = 30
)

var shortcuts = []input.Shortcut{
	{Keys: []int{int(glfw.KeyDelete), int(glfw.KeyD)}, Action: input.ActionDelete},
	{Keys: []int{int(glfw.KeyRight), int(glfw.KeyN), int(glfw.KeySpace)}, Action: input.ActionNext},
	{Keys: []int{int(glfw.KeyR)}, Action: input.ActionRotate},
	{Keys: []int{int(glfw.KeyEscape), int(glfw.KeyQ)}, Action: input.ActionQuit},
}

type Ui struct {
	win       *giu.MasterWindow
	sender    api.Sender
	rootPath  string
	pattern   string
	imageArea apitype.Size

	currentImage   *guiapi.TexturedImage
	currentCommand *api.UpdateImageCommand
	scanStatus     *api.ScanCompletedCommand
	errors         *status.ErrorQueue
	mux            sync.RWMutex

	api.Gui
}

func NewUi(params *common.Params, sender api.Sender) *Ui {
	windowSize := params.WindowSize()
	gui := &Ui{
		win:          giu.NewMasterWindow(windowTitle, windowSize.Width(), windowSize.Height(), 0),
		sender:       sender,
		rootPath:     params.RootPath(),
		pattern:      params.Pattern(),
		imageArea:    params.MaxSize(),
		currentImage: guiapi.NewEmptyTexturedImage(),
		errors:       &status.ErrorQueue{},
	}
	centerWindow(windowSize)
	return gui
}

func centerWindow(windowSize apitype.Size) {
	monitor := glfw.GetPrimaryMonitor()
	window := glfw.GetCurrentContext()
	if monitor == nil || window == nil {
		logger.Warn.Print("Could not center window, no monitor or window found")
		return
	}
	mode := monitor.GetVideoMode()
	x := (mode.Width - windowSize.Width()) / 2
	y := (mode.Height - windowSize.Height()) / 2
	logger.Debug.Printf("Centering %s window on %dx%d monitor", windowSize, mode.Width, mode.Height)
	window.SetPos(x, y)
}

func (s *Ui) Run() {
	s.sender.SendCommandToTopic(api.DirectoryChanged, &api.DirectoryCommand{
		Directory: s.rootPath,
		Pattern:   s.pattern,
	})
	s.win.Run(s.render)
}

func (s *Ui) render() {
	renderStart := time.Now()

	s.mux.Lock()
	currentImage := s.currentImage
	currentCommand := s.currentCommand
	scanStatus := s.scanStatus
	s.mux.Unlock()

	placeholder := status.NoImagesText
	if scanStatus == nil {
		placeholder = status.LoadingText
	} else if currentCommand != nil && currentCommand.LoadError != "" {
		placeholder = "Could not load image"
	}

	giu.SingleWindow().
		Layout(
			giu.Row(
				giu.Button("Delete").OnClick(s.requestDelete).Size(buttonWidth, buttonHeight),
				giu.Button("Next").OnClick(s.requestNext).Size(buttonWidth, buttonHeight),
				giu.Button("Rotate 90").OnClick(s.requestRotate).Size(buttonWidth, buttonHeight),
				giu.Dummy(-buttonWidth, buttonHeight),
				giu.Button("Quit").OnClick(s.quit).Size(buttonWidth, buttonHeight),
			),
			giu.Separator(),
			widget.CenteredImage(currentImage, float32(s.imageArea.Width()), float32(s.imageArea.Height())).
				Message(placeholder),
			giu.Separator(),
			giu.Label(status.ImageText(currentCommand)),
			giu.Label(status.ScanText(scanStatus)),
			giu.PrepareMsgbox(),
		)

	if errorMessage, ok := s.errors.Next(); ok {
		giu.Msgbox("Error", errorMessage).ResultCallback(func(giu.DialogResult) {
			s.errors.Dismiss()
		})
	}
	s.handleKeyPress()

	renderTime := time.Since(renderStart)
	if renderTime >= 10*time.Millisecond {
		logger.Debug.Printf("Rendered UI in %s", renderTime)
	} else if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Rendered UI in %s", renderTime)
	}
}

func (s *Ui) handleKeyPress() {
	action := input.Resolve(shortcuts, isKeyFreshlyPressed, s.errors.IsBlocking())
	if action == input.ActionNone {
		return
	}

	logger.Debug.Printf("Shortcut %s", action)
	switch action {
	case input.ActionDelete:
		s.requestDelete()
	case input.ActionNext:
		s.requestNext()
	case input.ActionRotate:
		s.requestRotate()
	case input.ActionQuit:
		s.quit()
	}
}

// giu.IsKeyPressed repeats while the key is held down
func isKeyFreshlyPressed(key int) bool {
	return imgui.IsKeyPressedV(key, false)
}

func (s *Ui) requestDelete() {
	s.sender.SendToTopic(api.ImageRequestDelete)
}

func (s *Ui) requestNext() {
	s.sender.SendToTopic(api.ImageRequestNext)
}

func (s *Ui) requestRotate() {
	s.sender.SendToTopic(api.ImageRequestRotate)
}

func (s *Ui) quit() {
	logger.Info.Print("Quitting")
	if window := glfw.GetCurrentContext(); window != nil {
		window.SetShouldClose(true)
	}
}

func (s *Ui) SetCurrentImage(command *api.UpdateImageCommand) {
	s.mux.Lock()
	s.currentCommand = command
	s.currentImage = guiapi.NewTexturedImage(command.ImageFile, apitype.Size{}, nil)
	s.mux.Unlock()

	if command.Image == nil {
		return
	}

	go func() {
		texture, err := giu.NewTextureFromRgba(command.Image.Image)
		if err != nil {
			logger.Error.Print("Could not create texture ", err)
			return
		}

		s.mux.Lock()
		if s.currentCommand == command {
			s.currentImage = guiapi.NewTexturedImage(command.ImageFile, command.Image.DisplaySize, texture)
		}
		s.mux.Unlock()
		giu.Update()
	}()
}

func (s *Ui) ClearImage() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.currentCommand = nil
	s.currentImage = guiapi.NewEmptyTexturedImage()
}

func (s *Ui) SetScanStatus(command *api.ScanCompletedCommand) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.scanStatus = command
}

func (s *Ui) ShowError(command *api.ErrorCommand) {
	s.errors.Push(command.Message)
}
