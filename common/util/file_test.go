package util

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoesFileExist_FileExists(t *testing.T) {
	require.True(t, DoesFileExist("file_test.go"))
}
func TestDoesFileExist_DirExists(t *testing.T) {
	require.True(t, DoesFileExist("../util"))
}
func TestDoesFileExist_DoesntExist(t *testing.T) {
	require.False(t, DoesFileExist("foobarfile"))
}

func TestMakeDirectoriesIfNotExist(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	newDir1 := filepath.Join(dir, "test1")
	newDir2 := filepath.Join(newDir1, "test2")

	a.Nil(MakeDirectoriesIfNotExist(dir, newDir2))
	a.True(DoesFileExist(newDir1))
	a.True(DoesFileExist(newDir2))

	// Already existing is fine
	a.Nil(MakeDirectoriesIfNotExist(dir, newDir2))
}

func TestRemoveFile(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join(t.TempDir(), "a.jpg")
	a.Nil(os.WriteFile(path, []byte("data"), 0644))

	a.Nil(RemoveFile(path))
	a.False(DoesFileExist(path))
	a.True(os.IsNotExist(RemoveFile(path)))
}

func TestTempFilePath(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join("some", "dir", "image.jpg")

	first, err := TempFilePath(path)
	a.Nil(err)
	second, err := TempFilePath(path)
	a.Nil(err)

	a.NotEqual(first, second)
	a.Equal(filepath.Join("some", "dir"), filepath.Dir(first))
	a.True(strings.HasPrefix(filepath.Base(first), ".image.jpg."))
	a.True(strings.HasSuffix(first, ".tmp"))
}

func TestReplaceFile(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	t.Run("Content is replaced", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "image.jpg")
		r.Nil(os.WriteFile(path, []byte("original"), 0640))

		err := ReplaceFile(path, func(writer io.Writer) error {
			_, err := writer.Write([]byte("replaced"))
			return err
		})
		r.Nil(err)

		content, err := os.ReadFile(path)
		r.Nil(err)
		a.Equal("replaced", string(content))

		entries, err := os.ReadDir(dir)
		r.Nil(err)
		a.Equal(1, len(entries))

		info, err := os.Stat(path)
		r.Nil(err)
		a.Equal(os.FileMode(0640), info.Mode().Perm())
	})

	t.Run("Failed write leaves original and no temp file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "image.jpg")
		r.Nil(os.WriteFile(path, []byte("original"), 0644))

		failure := errors.New("encode failed")
		err := ReplaceFile(path, func(writer io.Writer) error {
			_, _ = writer.Write([]byte("partial"))
			return failure
		})
		a.True(errors.Is(err, failure))

		content, err := os.ReadFile(path)
		r.Nil(err)
		a.Equal("original", string(content))

		entries, err := os.ReadDir(dir)
		r.Nil(err)
		a.Equal(1, len(entries))
	})

	t.Run("Missing file", func(t *testing.T) {
		dir := t.TempDir()
		err := ReplaceFile(filepath.Join(dir, "missing.jpg"), func(writer io.Writer) error {
			return nil
		})
		a.True(os.IsNotExist(err))

		entries, err := os.ReadDir(dir)
		r.Nil(err)
		a.Empty(entries)
	})
}
