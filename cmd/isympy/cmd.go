package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/joho/godotenv"
	"isympy/internal/cli"
	"isympy/internal/config"
	"isympy/internal/logging"
	"isympy/internal/shell"
)

func main() {
	// Variables already set in the environment win over .env.
	_ = godotenv.Load()

	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(exitCode(err, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	inv, shouldExit, err := cli.Parse(args, stdout, stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	file := inv.ConfigFile
	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
	} else {
		file = config.DefaultPath()
	}
	cfg, err := config.Load(file)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if inv.Python != "" {
		cfg.Python = inv.Python
	}

	level := cfg.LogLevel
	if inv.Verbose {
		level = "debug"
	}
	logger, closer, err := logging.New(level, cfg.LogFile, stderr)
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer closer.Close()
	logger.Debug("settings loaded", "file", file, "python", cfg.Python, "history_file", cfg.HistoryFile)
	if cfg.HomeErr != nil {
		logger.Debug("home directory unavailable; history disabled", "error", cfg.HomeErr)
	}

	backend, err := shell.New(cfg, logger)
	if err != nil {
		return err
	}
	if inv.DryRun {
		return backend.DryRun(stdout, inv.Session)
	}
	return backend.Launch(ctx, inv.Session)
}

// exitCode reports err on w and picks the process exit status. A backend
// that exited non-zero has already spoken for itself.
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}

	var usageErr *cli.ExitError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(w, "isympy: error: %s\n", usageErr.Message)
		return usageErr.Code
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}

	fmt.Fprintf(w, "isympy: %v\n", err)
	return 1
}
