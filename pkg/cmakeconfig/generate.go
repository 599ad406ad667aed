package cmakeconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"libconfgen/pkg/discover"

	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

// Result describes a completed run.
type Result struct {
	Path      string   // Generated file.
	Headers   []string // Header files found, in walk order.
	Libraries []string // Library files found, in walk order.
	Names     []string // Library names derived from Libraries.
}

// Generator writes the configuration file for a root directory.
type Generator struct {
	Layout Layout
	Logger *zap.Logger
}

// NewGenerator returns a Generator using DefaultLayout.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{Layout: DefaultLayout(), Logger: logger}
}

// Generate creates the output directory under root, discovers headers and libraries,
// and writes the configuration file. The output directory must not exist beforehand.
// If anything fails after the directory is created, the directory is removed again,
// so a failed run leaves root as it found it.
func (g *Generator) Generate(root string) (res *Result, err error) {
	logger := g.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()
	logger.Info("Starting configuration generation", zap.String("root", root))

	info, err := os.Stat(root)
	if err != nil {
		logger.Error("Failed to stat root directory", zap.String("root", root), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		logger.Error("Root is not a directory", zap.String("root", root))
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	outDir := g.Layout.OutputDir(root)
	if err := os.Mkdir(outDir, 0o755); err != nil {
		logger.Error("Failed to create output directory", zap.String("dir", outDir), zap.Error(err))
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %w", ErrOutputExists, err)
		}
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.RemoveAll(outDir); rmErr != nil {
			logger.Error("Failed to remove output directory after error", zap.String("dir", outDir), zap.Error(rmErr))
			return
		}
		logger.Debug("Removed output directory after error", zap.String("dir", outDir))
	}()

	headers, err := discover.FindFiles(root, discover.HeaderExtensions, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to collect headers: %w", err)
	}
	libraries, err := discover.FindFiles(root, discover.LibraryExtensions, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to collect libraries: %w", err)
	}
	names := LibraryNames(libraries)
	logger.Debug("Discovery finished",
		zap.Int("headers", len(headers)),
		zap.Int("libraries", len(libraries)),
		zap.Strings("names", names))

	outPath := g.Layout.OutputPath(root)
	if err := g.write(logger, outPath, root, names); err != nil {
		logger.Error("Failed to write configuration file", zap.String("file", outPath), zap.Error(err))
		return nil, err
	}

	logger.Info("Configuration generation completed",
		zap.String("file", outPath),
		zap.Int("libraries", len(names)),
		zap.Duration("elapsed", time.Since(startTime)))

	return &Result{
		Path:      outPath,
		Headers:   headers,
		Libraries: libraries,
		Names:     names,
	}, nil
}

// write renders into a pending file next to path and renames it into place
// only when rendering succeeded.
func (g *Generator) write(logger *zap.Logger, path, root string, names []string) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending configuration file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug("Cleanup pending configuration file", zap.Error(err))
		}
	}()

	if err := Render(pendingFile, root, g.Layout, names); err != nil {
		return err
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace configuration file: %w", err)
	}
	return nil
}
