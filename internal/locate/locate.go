// Package locate finds the pieces the launcher runs: the Python
// interpreter and, for uninstalled checkouts, the library sources.
package locate

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
)

// LibraryPackage is the package directory looked for next to the launcher.
const LibraryPackage = "sympy"

// ErrNoPython is returned when no interpreter can be found on PATH.
var ErrNoPython = errors.New("python executable not found")

// LibraryRoot reports the directory to put on the module search path when
// the launcher runs from a source checkout, i.e. when <exe>/../sympy is a
// directory.
func LibraryRoot(exe string) (string, bool) {
	if exe == "" {
		return "", false
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(exe), ".."))
	info, err := os.Stat(filepath.Join(root, LibraryPackage))
	if err != nil || !info.IsDir() {
		return "", false
	}
	return root, true
}

// PrependPath puts dir in front of an os.PathListSeparator separated list,
// dropping a later duplicate of it.
func PrependPath(list, dir string) string {
	if list == "" {
		return dir
	}
	parts := []string{dir}
	for _, p := range filepath.SplitList(list) {
		if p == dir {
			continue
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, string(os.PathListSeparator))
}

// Interpreter returns the argv prefix used to start Python. A configured
// command is shell-split so it may carry arguments ("uv run python");
// otherwise python3 and then python are looked up on PATH.
func Interpreter(configured string) ([]string, error) {
	if configured != "" {
		argv, err := shellquote.Split(configured)
		if err != nil {
			return nil, fmt.Errorf("parse python command %q: %w", configured, err)
		}
		if len(argv) == 0 {
			return nil, fmt.Errorf("empty python command")
		}
		path, err := exec.LookPath(argv[0])
		if err != nil {
			return nil, fmt.Errorf("python command %q: %w", argv[0], err)
		}
		argv[0] = path
		return argv, nil
	}
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return []string{path}, nil
		}
	}
	return nil, ErrNoPython
}
