// Package cmakeconfig generates a CMake LibraryConfig file describing the headers
// and libraries found under a root directory.
package cmakeconfig

import (
	"path/filepath"
	"strings"
)

// Layout names the directories and identifiers the generated file refers to.
// The include and library directories are conventions written into the output as-is;
// they are not derived from where discovery found anything.
type Layout struct {
	IncludeSubdir string // Written as LIBRARY_INCLUDE_DIRS.
	LibrarySubdir string // Written as LIBRARY_LIBRARY_DIRS.
	OutputSubdir  string // Directory created under the root for the output.
	OutputFile    string // Name of the generated file.
	TargetName    string // Interface library target declared in the output.
}

// DefaultLayout returns the layout used by the generator.
func DefaultLayout() Layout {
	return Layout{
		IncludeSubdir: "include",
		LibrarySubdir: "armhf",
		OutputSubdir:  "cmake",
		OutputFile:    "LibraryConfig.cmake",
		TargetName:    "MyLibrary",
	}
}

func (l Layout) IncludeDir(root string) string { return joinUnder(root, l.IncludeSubdir) }

func (l Layout) LibraryDir(root string) string { return joinUnder(root, l.LibrarySubdir) }

func (l Layout) OutputDir(root string) string { return joinUnder(root, l.OutputSubdir) }

// OutputPath is the full path of the generated file.
func (l Layout) OutputPath(root string) string {
	return joinUnder(l.OutputDir(root), l.OutputFile)
}

// joinUnder appends name to root without cleaning root, so "." stays "./include"
// and the written paths read exactly as the root was given.
func joinUnder(root, name string) string {
	if root == "" {
		return name
	}
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root + name
	}
	return root + string(filepath.Separator) + name
}
