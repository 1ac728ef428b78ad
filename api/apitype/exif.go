package apitype

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

const exifTimeLayout = "2006:01:02 15:04:05"

type ExifData struct {
	orientation int
	created     time.Time
	make        string
	model       string
	valid       bool
}

func NewInvalidExifData() *ExifData {
	return &ExifData{orientation: 1, created: time.Unix(0, 0)}
}

func NewExifData(decodedExif *exif.Exif) *ExifData {
	data := &ExifData{orientation: 1, created: time.Unix(0, 0), valid: true}
	if orientation, err := GetInt(decodedExif, exif.Orientation); err == nil {
		data.orientation = orientation
	}
	if created, err := GetTime(decodedExif, exif.DateTimeOriginal); err == nil {
		data.created = created
	}
	if cameraMake, err := GetString(decodedExif, exif.Make); err == nil {
		data.make = strings.TrimSpace(cameraMake)
	}
	if model, err := GetString(decodedExif, exif.Model); err == nil {
		data.model = strings.TrimSpace(model)
	}
	return data
}

// LoadExifData reads EXIF from the file. Files without EXIF return invalid
// data together with the decode error.
func LoadExifData(imageFile *ImageFile) (*ExifData, error) {
	file, err := os.Open(imageFile.Path())
	if err != nil {
		return NewInvalidExifData(), err
	}
	defer file.Close()

	if decodedExif, err := exif.Decode(file); err != nil {
		return NewInvalidExifData(), err
	} else {
		return NewExifData(decodedExif), nil
	}
}

func (s *ExifData) IsValid() bool {
	return s != nil && s.valid
}

func (s *ExifData) Orientation() int {
	if s != nil {
		return s.orientation
	}
	return 1
}

func (s *ExifData) CreatedTime() time.Time {
	if s != nil {
		return s.created
	}
	return time.Unix(0, 0)
}

func (s *ExifData) Camera() string {
	if s == nil {
		return ""
	}
	if s.make != "" && !strings.HasPrefix(s.model, s.make) {
		return strings.TrimSpace(s.make + " " + s.model)
	}
	return s.model
}

// Summary is a short human readable description for the status line
func (s *ExifData) Summary() string {
	if !s.IsValid() {
		return ""
	}
	var parts []string
	if camera := s.Camera(); camera != "" {
		parts = append(parts, camera)
	}
	if s.created.Unix() > 0 {
		parts = append(parts, s.created.Format("2006-01-02 15:04"))
	}
	return strings.Join(parts, ", ")
}

func (s *ExifData) String() string {
	return fmt.Sprintf("ExifData{%s}", s.Summary())
}

func GetInt(decodedExif *exif.Exif, tagName exif.FieldName) (int, error) {
	if tag, err := decodedExif.Get(tagName); err != nil {
		return 0, err
	} else {
		return tag.Int(0)
	}
}

func GetString(decodedExif *exif.Exif, tagName exif.FieldName) (string, error) {
	if tag, err := decodedExif.Get(tagName); err != nil {
		return "", err
	} else {
		return tag.StringVal()
	}
}

func GetTime(decodedExif *exif.Exif, tagName exif.FieldName) (time.Time, error) {
	if stringVal, err := GetString(decodedExif, tagName); err != nil {
		return time.Unix(0, 0), err
	} else {
		return time.Parse(exifTimeLayout, stringVal)
	}
}
