package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	lingolog "github.com/msto63/lingo/core/log"
	lingotoken "github.com/msto63/lingo/token"
	lingostringx "github.com/msto63/lingo/utils/stringx"
)

var (
	lexEval   string
	lexStrict bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file|-]",
	Short: "Print the token stream of a Lingo source",
	Long: `Tokenizes a Lingo source and prints one token per line with its
kind, literal, and position. Reads from stdin when the argument is
missing or "-".

Examples:
  lingo lex program.lingo
  lingo lex --eval "let x = 5;"
  echo "let x = 5;" | lingo lex
  lingo lex --strict broken.lingo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize the given source instead of a file")
	lexCmd.Flags().BoolVar(&lexStrict, "strict", false, "fail on the first illegal character")
}

func runLex(cmd *cobra.Command, args []string) error {
	source, name, err := readSource(args, lexEval)
	if err != nil {
		return err
	}

	tokens, err := newEngine(!lexStrict).Tokenize(source)
	if err != nil {
		return err
	}

	appLogger.Debug("source tokenized", lingolog.Fields{
		"source": name,
		"tokens": len(tokens),
	})

	for _, tok := range tokens {
		if tok.Kind == lingotoken.EndOfFile {
			break
		}
		fmt.Printf("%s %s %d:%d\n",
			lingostringx.PadRight(tok.Kind.String(), 10, ' '),
			lingostringx.PadRight(strconv.Quote(tok.Literal), 12, ' '),
			tok.Line, tok.Column)
	}

	return nil
}
