package library

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"vincit.fi/image-culler/api/apitype"
	"vincit.fi/image-culler/common/logger"
)

type ScanDiagnostic struct {
	Path string
	Err  error
}

type ScanResult struct {
	Root        string
	Pattern     string
	Files       []*apitype.ImageFile
	Diagnostics []ScanDiagnostic
}

// RootFailed returns true if the root itself could not be read
func (s *ScanResult) RootFailed() bool {
	for _, diagnostic := range s.Diagnostics {
		if diagnostic.Path == s.Root {
			return true
		}
	}
	return false
}

// ScanDirectory walks root recursively and returns every file whose name
// ends with pattern, sorted by path. Unreadable paths do not stop the walk;
// they are collected into the diagnostics instead.
func ScanDirectory(root string, pattern string) *ScanResult {
	startTime := time.Now()
	result := &ScanResult{
		Root:    root,
		Pattern: pattern,
	}

	logger.Debug.Printf("Scanning directory '%s' for '*%s'", root, pattern)
	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn.Printf("Skipping '%s': %s", path, err)
			result.Diagnostics = append(result.Diagnostics, ScanDiagnostic{Path: path, Err: err})
			return nil
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), pattern) {
			return nil
		}
		if entry.Type()&fs.ModeSymlink != 0 && isDirectory(path) {
			return nil
		}
		result.Files = append(result.Files, apitype.NewImageFileFromPath(path))
		return nil
	})
	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path() < result.Files[j].Path()
	})

	logger.Info.Printf("Found %d images in '%s' in %s (%d paths skipped)",
		len(result.Files), root, time.Since(startTime), len(result.Diagnostics))
	return result
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
