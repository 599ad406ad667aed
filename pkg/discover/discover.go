// Package discover finds files under a directory tree by filename suffix.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Suffix sets used by the generator. Matching is case-sensitive.
var (
	HeaderExtensions  = []string{".h"}
	LibraryExtensions = []string{".so", ".a"}
)

var (
	// ErrNoExtensions is returned when FindFiles is called without any suffix to match.
	ErrNoExtensions = errors.New("no file extensions given")
	// ErrNotDirectory is returned when the walk root is a file.
	ErrNotDirectory = errors.New("not a directory")
)

// FindFiles walks root recursively and returns every file whose name ends with one
// of exts, in walk order. Walk errors are returned, not skipped. A root that is a
// symlink to a directory is followed; returned paths keep the root as given.
func FindFiles(root string, exts []string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(exts) == 0 {
		return nil, ErrNoExtensions
	}

	logger.Debug("Starting file discovery", zap.String("root", root), zap.Strings("extensions", exts))

	walkRoot, err := resolveRoot(root)
	if err != nil {
		logger.Error("Invalid discovery root", zap.String("root", root), zap.Error(err))
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	var found []string
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Error("Error accessing path during discovery", zap.String("path", path), zap.Error(err))
			return err
		}
		if d.IsDir() {
			return nil
		}
		if HasSuffix(d.Name(), exts) {
			found = append(found, path)
			logger.Debug("Matched file", zap.String("path", path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	logger.Debug("Completed file discovery", zap.String("root", root), zap.Int("matched", len(found)))
	return found, nil
}

// resolveRoot checks that root is a directory, following symlinks, and returns the
// path to hand to WalkDir. WalkDir does not follow a symlinked root, so a trailing
// separator is added to make it resolve.
func resolveRoot(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", ErrNotDirectory
	}

	linfo, err := os.Lstat(root)
	if err != nil {
		return "", err
	}
	if linfo.Mode()&fs.ModeSymlink != 0 && !strings.HasSuffix(root, string(filepath.Separator)) {
		return root + string(filepath.Separator), nil
	}
	return root, nil
}

// HasSuffix reports whether name ends with any of exts.
func HasSuffix(name string, exts []string) bool {
	return lo.SomeBy(exts, func(ext string) bool {
		return strings.HasSuffix(name, ext)
	})
}
