package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"isympy/internal/config"
	"isympy/internal/history"
	"isympy/internal/locate"
	"isympy/internal/session"
)

const envPythonPath = "PYTHONPATH"

// Backend runs the interactive session: an interpreter child that calls the
// library initializer and owns the terminal until the user quits.
type Backend struct {
	Python      []string
	LibraryDir  string
	HistoryFile string
	HistorySize int

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Environ is the environment the child inherits; os.Environ when nil.
	Environ func() []string
}

// New resolves the interpreter and library location from settings. When no
// library directory is configured, a checkout next to the running
// executable is used if there is one.
func New(cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	python, err := locate.Interpreter(cfg.Python)
	if err != nil {
		return nil, fmt.Errorf("error locating python: %w", err)
	}

	libraryDir := cfg.LibraryDir
	if libraryDir == "" {
		if exe, err := executable(); err == nil {
			if root, ok := locate.LibraryRoot(exe); ok {
				libraryDir = root
			}
		}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger.Debug("backend resolved", "python", python, "library_dir", libraryDir)

	return &Backend{
		Python:      python,
		LibraryDir:  libraryDir,
		HistoryFile: cfg.HistoryFile,
		HistorySize: cfg.HistorySize,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Logger:      logger,
	}, nil
}

func executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}

// Overrides returns every variable the child gets on top of the inherited
// environment. This is the only place launcher settings become environment
// variables.
func (b *Backend) Overrides(cfg session.Config) map[string]string {
	env := session.Environment(cfg)
	if b.LibraryDir != "" {
		env[envPythonPath] = locate.PrependPath(lookupEnv(b.environ(), envPythonPath), b.LibraryDir)
	}
	if b.HistoryFile != "" {
		env[session.EnvHistoryFile] = b.HistoryFile
		if b.HistorySize > 0 {
			env[session.EnvHistorySize] = strconv.Itoa(b.HistorySize)
		}
	}
	return env
}

// Command builds the child process for cfg without starting it.
func (b *Backend) Command(ctx context.Context, cfg session.Config) *exec.Cmd {
	args := append([]string{}, b.Python[1:]...)
	args = append(args, "-c", session.Bootstrap(cfg))
	args = append(args, cfg.BackendArgs...)

	cmd := exec.CommandContext(ctx, b.Python[0], args...)
	cmd.Env = mergeEnv(b.environ(), b.Overrides(cfg))
	cmd.Stdin = b.Stdin
	cmd.Stdout = b.Stdout
	cmd.Stderr = b.Stderr
	return cmd
}

// Launch runs the session in the foreground and returns when it ends. A
// non-zero exit of the child is returned as an error wrapping
// *exec.ExitError.
func (b *Backend) Launch(ctx context.Context, cfg session.Config) error {
	logger := b.logger()
	if f, ok := b.Stdin.(*os.File); ok && !readline.IsTerminal(int(f.Fd())) {
		logger.Warn("stdin is not a terminal; the session will not be interactive")
	}
	b.compactHistory()

	cmd := b.Command(ctx, cfg)
	logger.Debug("starting backend",
		"console", string(cfg.Console),
		"pretty", string(cfg.Pretty),
		"order", string(cfg.Order),
		"env", b.Overrides(cfg),
		"args", cfg.BackendArgs,
	)

	stop := b.watchSignals()
	defer stop()

	proc, err := start(cmd)
	if err != nil {
		return fmt.Errorf("start backend: %w", err)
	}
	err = proc.wait()
	logger.Debug("backend finished", "pid", proc.Pid, "status", proc.Status)
	if err != nil {
		return fmt.Errorf("backend %s: %w", proc.Status, err)
	}
	return nil
}

// DryRun writes the command Launch would run, as a single shell-quoted
// line, without starting anything.
func (b *Backend) DryRun(w io.Writer, cfg session.Config) error {
	overrides := b.Overrides(cfg)
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	words := []string{"env"}
	for _, k := range keys {
		words = append(words, k+"="+overrides[k])
	}
	words = append(words, b.Command(context.Background(), cfg).Args...)
	_, err := fmt.Fprintln(w, shellquote.Join(words...))
	return err
}

func (b *Backend) compactHistory() {
	if b.HistoryFile == "" {
		return
	}
	h, err := history.Open(b.HistoryFile, b.HistorySize)
	if err != nil {
		b.logger().Warn("history file unavailable", "path", b.HistoryFile, "error", err)
		return
	}
	if err := h.Compact(); err != nil {
		b.logger().Warn("history file not compacted", "path", h.Path(), "error", err)
		return
	}
	b.logger().Debug("history ready", "path", h.Path(), "entries", h.Len())
}

func (b *Backend) environ() []string {
	if b.Environ != nil {
		return b.Environ()
	}
	return os.Environ()
}

func (b *Backend) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func lookupEnv(env []string, key string) string {
	for i := len(env) - 1; i >= 0; i-- {
		if k, v, ok := strings.Cut(env[i], "="); ok && k == key {
			return v
		}
	}
	return ""
}

// mergeEnv replaces or appends overrides in base, keeping base order.
func mergeEnv(base []string, overrides map[string]string) []string {
	out := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		k, _, _ := strings.Cut(kv, "=")
		if _, ok := overrides[k]; ok {
			continue
		}
		out = append(out, kv)
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s=%s", k, overrides[k]))
	}
	return out
}
