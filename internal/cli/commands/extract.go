package commands

import (
	"errors"
	"fmt"

	"github.com/cesarkawakami/adventofcode2021vs4/internal/alu"
	"github.com/cesarkawakami/adventofcode2021vs4/internal/cli/output"
	"github.com/spf13/cobra"
)

// ExtractLong is shared by the root command and the extract subcommand.
const ExtractLong = `Read an ALU program, check that every block follows the 18-instruction
template, and print the three operands of each block.

Blocks start at each "inp" line. Blank lines and lines starting with "#" are
ignored. The first block that does not match stops the run: its text is
printed to stderr and the command exits with status 1.`

// ExtractExample is shared by the root command and the extract subcommand.
const ExtractExample = `  # Read stdin, write array literals to stdout
  aluparse < input.txt

  # Read a file and write one JSON array per block
  aluparse extract input.txt --output json

  # Show block indexes and source lines in a table
  aluparse input.txt -o table`

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "extract [file]",
		Short:   "Extract block operands from an ALU program",
		Long:    ExtractLong,
		Example: ExtractExample,
		Args:    cobra.MaximumNArgs(1),
		RunE:    RunExtract,
	}
}

// RunExtract runs the extraction for cmd. It is also the root command's action.
func RunExtract(cmd *cobra.Command, args []string) (err error) {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer func() { _ = closeIn() }()

	out, closeOut, err := openOutput(cmd, cfg.Out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write output: %w", cerr)
		}
	}()

	em, err := output.NewEmitter(out, format)
	if err != nil {
		return err
	}

	_, err = alu.Extract(cmd.Context(), in, em, &alu.Options{
		Segmenter: &alu.SegmenterOptions{Sentinel: cfg.Sentinel, CommentPrefix: cfg.CommentPrefix},
		Logger:    cmdCtx.Logger,
	})
	if err != nil {
		var mm *alu.MismatchError
		if errors.As(err, &mm) {
			if rerr := output.RenderMismatch(cmd.ErrOrStderr(), mm, cmdCtx.Styles); rerr != nil {
				cmdCtx.Logger.Warn("failed to render mismatch", "error", rerr)
			}
		}
		return err
	}
	return em.Flush()
}
