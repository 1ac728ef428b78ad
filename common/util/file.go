package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"vincit.fi/image-culler/common/logger"
)

const tempFileSuffix = ".tmp"

func DoesFileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// MakeDirectoriesIfNotExist creates dir with the same permissions as parentDir
func MakeDirectoriesIfNotExist(parentDir string, dir string) error {
	if DoesFileExist(dir) {
		return nil
	}
	mode := os.FileMode(0755)
	if info, err := os.Stat(parentDir); err == nil {
		mode = info.Mode().Perm()
	}
	logger.Debug.Printf("Creating directory '%s'", dir)
	return os.MkdirAll(dir, mode)
}

func RemoveFile(path string) error {
	logger.Debug.Printf("Deleting '%s'", path)
	return os.Remove(path)
}

// TempFilePath returns a hidden, unique path next to the given file. The
// original name is kept in it so that leftovers can be traced back.
func TempFilePath(path string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	dir, file := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.%s%s", file, id.String(), tempFileSuffix)), nil
}

// ReplaceFile writes new content for path into a temporary file in the same
// directory and renames it over path. On any failure the temporary file is
// removed and path is left untouched.
func ReplaceFile(path string, write func(writer io.Writer) error) (err error) {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tempPath, err := TempFilePath(path)
	if err != nil {
		return err
	}

	tempFile, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	logger.Trace.Printf("Writing '%s' via '%s'", path, tempPath)

	defer func() {
		if err != nil {
			_ = tempFile.Close()
			if removeErr := os.Remove(tempPath); removeErr != nil && !os.IsNotExist(removeErr) {
				logger.Warn.Printf("Could not remove temporary file '%s': %s", tempPath, removeErr)
			}
		}
	}()

	writer := bufio.NewWriter(tempFile)
	if err = write(writer); err != nil {
		return err
	}
	if err = writer.Flush(); err != nil {
		return err
	}
	if err = tempFile.Sync(); err != nil {
		return err
	}
	if err = tempFile.Close(); err != nil {
		return err
	}
	return os.Rename(tempPath, path)
}
