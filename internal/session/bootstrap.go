package session

import (
	"fmt"
	"strings"
)

// Variables the bootstrap reads to set up console history.
const (
	EnvHistoryFile = "ISYMPY_HISTFILE"
	EnvHistorySize = "ISYMPY_HISTSIZE"
)

const historyPrelude = `import os, sys

def _isympy_history():
    path = os.environ.get('` + EnvHistoryFile + `')
    if not path:
        return
    try:
        import atexit, readline
    except ImportError:
        return
    try:
        readline.read_history_file(path)
    except (IOError, OSError):
        pass
    readline.set_history_length(int(os.environ.get('` + EnvHistorySize + `', '1000')))
    atexit.register(readline.write_history_file, path)

_isympy_history()
del _isympy_history
`

// Bootstrap renders the program passed to the interpreter with -c. The
// backend arguments are expected in sys.argv[1:], which keeps them out of
// the program text entirely.
func Bootstrap(c Config) string {
	var b strings.Builder
	b.WriteString(historyPrelude)
	b.WriteString("\nfrom sympy import init_session\n")

	args := []string{"argv=sys.argv[1:]"}
	for _, kw := range c.Kwargs() {
		args = append(args, fmt.Sprintf("%s=%s", kw.Name, kw.Value))
	}
	fmt.Fprintf(&b, "init_session(%s)\n", strings.Join(args, ", "))
	return b.String()
}
