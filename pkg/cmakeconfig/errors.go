package cmakeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRoot      = errors.New("invalid root directory")
	ErrOutputExists     = errors.New("output directory already exists")
	ErrNoLibrariesFound = errors.New("no libraries found")
)

// NoLibrariesFoundError reports that discovery matched no library file, so there is
// nothing to link the interface target against.
type NoLibrariesFoundError struct {
	Root       string
	Extensions []string
}

func (e *NoLibrariesFoundError) Error() string {
	return fmt.Sprintf("no libraries found under %s (looked for %s)", e.Root, strings.Join(e.Extensions, ", "))
}

// Is makes errors.Is(err, ErrNoLibrariesFound) hold.
func (e *NoLibrariesFoundError) Is(target error) bool {
	return target == ErrNoLibrariesFound
}
