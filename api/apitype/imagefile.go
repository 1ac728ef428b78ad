package apitype

import (
	"path/filepath"
)

type ImageFile struct {
	directory string
	filename  string
	path      string
}

var EmptyImageFile = ImageFile{path: ""}

func NewImageFile(fileDir string, fileName string) *ImageFile {
	return &ImageFile{
		directory: fileDir,
		filename:  fileName,
		path:      filepath.Join(fileDir, fileName),
	}
}

func NewImageFileFromPath(path string) *ImageFile {
	directory, fileName := filepath.Split(path)
	return &ImageFile{
		directory: filepath.Clean(directory),
		filename:  fileName,
		path:      path,
	}
}

func GetEmptyImageFile() *ImageFile {
	return &EmptyImageFile
}

func (s *ImageFile) IsValid() bool {
	return s != nil && s.path != ""
}

func (s *ImageFile) String() string {
	if s != nil {
		if s.IsValid() {
			return "ImageFile{" + s.path + "}"
		} else {
			return "ImageFile<invalid>"
		}
	} else {
		return "ImageFile<nil>"
	}
}

func (s *ImageFile) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *ImageFile) Directory() string {
	if s != nil {
		return s.directory
	} else {
		return ""
	}
}

func (s *ImageFile) FileName() string {
	if s != nil {
		return s.filename
	} else {
		return ""
	}
}

// Equals compares by path so that lookups work with separately
// constructed instances of the same file
func (s *ImageFile) Equals(other *ImageFile) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.path == other.path
}
