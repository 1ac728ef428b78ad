package apitype

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEmptyImageFile(t *testing.T) {
	a := assert.New(t)

	imageFile := GetEmptyImageFile()

	a.False(imageFile.IsValid())
}

func TestImageFile_String(t *testing.T) {
	a := assert.New(t)

	var nilImageFile *ImageFile
	a.Equal("ImageFile<nil>", nilImageFile.String())
	a.Equal("ImageFile<invalid>", NewImageFileFromPath("").String())
	a.Equal("ImageFile{"+filepath.Join("some", "dir", "file.jpg")+"}", NewImageFile(filepath.Join("some", "dir"), "file.jpg").String())
}

func TestValidImageFile(t *testing.T) {
	a := assert.New(t)

	imageFile := NewImageFile(filepath.Join("some", "dir"), "file.jpg")

	t.Run("Validity", func(t *testing.T) {
		a.True(imageFile.IsValid())
	})
	t.Run("Properties", func(t *testing.T) {
		a.Equal("file.jpg", imageFile.FileName())
		a.Equal(filepath.Join("some", "dir"), imageFile.Directory())
		a.Equal(filepath.Join("some", "dir", "file.jpg"), imageFile.Path())
	})
}

func TestNewImageFileFromPath(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join("root", "sub", "c.jpg")
	imageFile := NewImageFileFromPath(path)

	a.Equal(path, imageFile.Path())
	a.Equal(filepath.Join("root", "sub"), imageFile.Directory())
	a.Equal("c.jpg", imageFile.FileName())
}

func TestNilImageFile(t *testing.T) {
	a := assert.New(t)

	var imageFile *ImageFile

	t.Run("Validity", func(t *testing.T) {
		a.False(imageFile.IsValid())
	})
	t.Run("Properties", func(t *testing.T) {
		a.Equal("", imageFile.FileName())
		a.Equal("", imageFile.Directory())
		a.Equal("", imageFile.Path())
	})
}

func TestImageFile_Equals(t *testing.T) {
	a := assert.New(t)

	var nilImageFile *ImageFile
	first := NewImageFile("dir", "a.jpg")

	a.True(first.Equals(NewImageFileFromPath(filepath.Join("dir", "a.jpg"))))
	a.False(first.Equals(NewImageFile("dir", "b.jpg")))
	a.False(first.Equals(nilImageFile))
	a.True(nilImageFile.Equals(nil))
}
