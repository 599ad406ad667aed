package cmakeconfig

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"libconfgen/pkg/discover"

	"github.com/samber/lo"
)

// LibraryNames strips the directory and extension from each library path,
// preserving order. A leading dot does not start an extension.
func LibraryNames(paths []string) []string {
	return lo.Map(paths, func(path string, _ int) string {
		base := filepath.Base(path)
		ext := filepath.Ext(strings.TrimLeft(base, "."))
		return strings.TrimSuffix(base, ext)
	})
}

// Render writes the configuration text for root. Only the first name is linked
// against the interface target; all names go into LIBRARY_LIBRARIES.
// Nothing is written when names is empty.
func Render(w io.Writer, root string, layout Layout, names []string) error {
	if len(names) == 0 {
		return &NoLibrariesFoundError{Root: root, Extensions: discover.LibraryExtensions}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", layout.OutputFile)
	b.WriteString("# Configuration to find and use libraries\n\n")
	fmt.Fprintf(&b, "set(LIBRARY_INCLUDE_DIRS \"%s\")\n\n", layout.IncludeDir(root))
	fmt.Fprintf(&b, "set(LIBRARY_LIBRARY_DIRS \"%s\")\n\n", layout.LibraryDir(root))
	fmt.Fprintf(&b, "set(LIBRARY_LIBRARIES %s)\n\n", strings.Join(names, ";"))
	fmt.Fprintf(&b, "add_library(%s INTERFACE)\n", layout.TargetName)
	fmt.Fprintf(&b, "target_include_directories(%s INTERFACE ${LIBRARY_INCLUDE_DIRS})\n", layout.TargetName)
	fmt.Fprintf(&b, "target_link_libraries(%s INTERFACE ${LIBRARY_LIBRARY_DIRS}/%s)\n\n", layout.TargetName, names[0])
	b.WriteString("message(STATUS \"Found libraries: ${LIBRARY_LIBRARIES}\")\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	return nil
}
