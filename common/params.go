package common

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"vincit.fi/image-culler/api/apitype"
)

type AfterRotate string

const (
	// ShowNextAfterRotate picks a new random image once the rotation is saved
	ShowNextAfterRotate AfterRotate = "next"
	// ShowSameAfterRotate keeps the rotated image on screen
	ShowSameAfterRotate AfterRotate = "same"
)

const (
	DefaultPattern      = ".jpg"
	DefaultMaxWidth     = 700
	DefaultMaxHeight    = 700
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

type Params struct {
	rootPath     string
	pattern      string
	maxWidth     int
	maxHeight    int
	windowWidth  int
	windowHeight int
	afterRotate  AfterRotate
	logLevel     string
	journal      bool
	seed         int64
}

func NewDefaultParams(rootPath string) *Params {
	return &Params{
		rootPath:     rootPath,
		pattern:      DefaultPattern,
		maxWidth:     DefaultMaxWidth,
		maxHeight:    DefaultMaxHeight,
		windowWidth:  DefaultWindowWidth,
		windowHeight: DefaultWindowHeight,
		afterRotate:  ShowNextAfterRotate,
		logLevel:     "INFO",
		journal:      true,
		seed:         0,
	}
}

func ParseParams() (*Params, error) {
	return ParseParamsFrom(os.Args[0], os.Args[1:])
}

func ParseParamsFrom(name string, args []string) (*Params, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	pattern := flags.String("pattern", DefaultPattern, "File name suffix of the images to show, e.g. .jpg")
	maxWidth := flags.Int("maxWidth", DefaultMaxWidth, "Maximum width of the displayed image")
	maxHeight := flags.Int("maxHeight", DefaultMaxHeight, "Maximum height of the displayed image")
	windowWidth := flags.Int("windowWidth", DefaultWindowWidth, "Initial window width")
	windowHeight := flags.Int("windowHeight", DefaultWindowHeight, "Initial window height")
	afterRotate := flags.String("afterRotate", string(ShowNextAfterRotate), "What to show after rotating: 'next' random image or the 'same' image")
	logLevel := flags.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	journal := flags.Bool("journal", true, "Record deletions and rotations to a journal database in the home directory")
	seed := flags.Int64("seed", 0, "Seed for the random image picker. 0 uses the current time")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	return &Params{
		rootPath:     flags.Arg(0),
		pattern:      *pattern,
		maxWidth:     *maxWidth,
		maxHeight:    *maxHeight,
		windowWidth:  *windowWidth,
		windowHeight: *windowHeight,
		afterRotate:  AfterRotate(strings.ToLower(*afterRotate)),
		logLevel:     *logLevel,
		journal:      *journal,
		seed:         *seed,
	}, nil
}

// Validate checks that the root is an existing directory and the rest of
// the values are usable
func (s *Params) Validate() error {
	if s.rootPath == "" {
		return fmt.Errorf("%w: root directory not given", apitype.ErrInvalidParams)
	}
	if info, err := os.Stat(s.rootPath); err != nil {
		return fmt.Errorf("%w: root directory '%s': %s", apitype.ErrInvalidParams, s.rootPath, err)
	} else if !info.IsDir() {
		return fmt.Errorf("%w: '%s' is not a directory", apitype.ErrInvalidParams, s.rootPath)
	}
	if s.pattern == "" {
		return fmt.Errorf("%w: pattern must not be empty", apitype.ErrInvalidParams)
	}
	if s.maxWidth <= 0 || s.maxHeight <= 0 {
		return fmt.Errorf("%w: display size %dx%d", apitype.ErrInvalidParams, s.maxWidth, s.maxHeight)
	}
	if s.windowWidth <= 0 || s.windowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", apitype.ErrInvalidParams, s.windowWidth, s.windowHeight)
	}
	if s.afterRotate != ShowNextAfterRotate && s.afterRotate != ShowSameAfterRotate {
		return fmt.Errorf("%w: afterRotate '%s'", apitype.ErrInvalidParams, s.afterRotate)
	}
	return nil
}

func (s *Params) RootPath() string {
	return s.rootPath
}

func (s *Params) SetRootPath(rootPath string) {
	s.rootPath = rootPath
}

func (s *Params) Pattern() string {
	return s.pattern
}

func (s *Params) MaxSize() apitype.Size {
	return apitype.SizeOf(s.maxWidth, s.maxHeight)
}

func (s *Params) WindowSize() apitype.Size {
	return apitype.SizeOf(s.windowWidth, s.windowHeight)
}

func (s *Params) AfterRotate() AfterRotate {
	return s.afterRotate
}

func (s *Params) SetAfterRotate(afterRotate AfterRotate) {
	s.afterRotate = afterRotate
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) JournalEnabled() bool {
	return s.journal
}

func (s *Params) Seed() int64 {
	return s.seed
}
