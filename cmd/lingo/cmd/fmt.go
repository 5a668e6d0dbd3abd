package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file|-]",
	Short: "Print the canonical formatting of a Lingo source",
	Long: `Parses a Lingo source and prints its canonical formatting. The
output is stable: formatting an already formatted source returns it
unchanged.

Examples:
  lingo fmt program.lingo
  echo "let   x=5 ;" | lingo fmt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	source, _, err := readSource(args, "")
	if err != nil {
		return err
	}

	formatted, err := newEngine(true).Format(source)
	if err != nil {
		return err
	}

	fmt.Println(formatted)
	return nil
}
