package commands

import (
	"fmt"

	"github.com/cesarkawakami/adventofcode2021vs4/internal/alu"
	"github.com/spf13/cobra"
)

// NewTemplateCommand creates the template command.
func NewTemplateCommand() *cobra.Command {
	var numbered bool

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print the block template",
		Long: `Print the 18-instruction template every block must match.

Operand slots are shown as <a>, <b> and <c>, in the order they are emitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tmpl := alu.NewMatcher().Template()
			w := cmd.OutOrStdout()
			if !numbered {
				_, err := fmt.Fprint(w, tmpl.String())
				return err
			}
			for i := range tmpl.Len() {
				if _, err := fmt.Fprintf(w, "%2d  %s\n", i+1, tmpl.Pattern(i)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&numbered, "numbered", "n", false, "Prefix each line with its position")
	return cmd
}
