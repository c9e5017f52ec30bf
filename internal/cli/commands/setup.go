// Package commands implements the aluparse subcommands.
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cesarkawakami/adventofcode2021vs4/internal/cli/config"
	"github.com/cesarkawakami/adventofcode2021vs4/internal/cli/output"
	"github.com/spf13/cobra"
)

// stdioName names stdin or stdout in place of a path.
const stdioName = "-"

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Styles *output.Styles
}

// NewCommandContext collects the config and logger that the root command
// stored in the command context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	errOut := cmd.ErrOrStderr()
	return &CommandContext{
		Cfg:    cfg,
		Logger: config.GetLogger(cmd.Context()),
		Styles: output.NewStyles(errOut, output.ColorEnabled(cfg.Color, errOut)),
	}
}

// openInput returns the command's input: the named file, or stdin for no
// argument or "-". The returned close func is never nil.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func() error, error) {
	if len(args) == 0 || args[0] == stdioName {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, f.Close, nil
}

// openOutput returns a buffered writer for path, or for stdout when path is
// empty or "-". The close func flushes the buffer and closes any file.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == stdioName {
		bw := bufio.NewWriter(cmd.OutOrStdout())
		return bw, bw.Flush, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	bw := bufio.NewWriter(f)
	return bw, func() error {
		return errors.Join(bw.Flush(), f.Close())
	}, nil
}
