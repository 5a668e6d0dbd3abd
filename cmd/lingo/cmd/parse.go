package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	lingoast "github.com/msto63/lingo/ast"
)

var parseTree bool

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Parse a Lingo source and print the result",
	Long: `Parses a Lingo source and prints its canonical form, or the tree
structure with --tree. Parse errors are listed with their positions
and the process exits with a data error status.

Examples:
  lingo parse program.lingo
  lingo parse --tree program.lingo
  echo "let x = 5;" | lingo parse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseTree, "tree", "t", false, "print the tree structure instead of the canonical form")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, name, err := readSource(args, "")
	if err != nil {
		return err
	}

	result, err := newEngine(true).Parse(source)
	if err != nil {
		if result != nil && result.HasErrors() {
			fmt.Fprintf(os.Stderr, "%s: %d parse error(s)\n", name, len(result.Diagnostics))
			for _, d := range result.Diagnostics {
				fmt.Fprintf(os.Stderr, "  %s\n", d.Error())
			}
		}
		return err
	}

	if parseTree {
		fmt.Print(lingoast.ASTToString(result.Program))
		return nil
	}

	fmt.Println(result.Program.String())
	return nil
}
