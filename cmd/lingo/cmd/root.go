package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/lingo"
	lingoconfig "github.com/msto63/lingo/core/config"
	lingoerror "github.com/msto63/lingo/core/error"
	lingolog "github.com/msto63/lingo/core/log"
)

var (
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string

	appConfig *lingoconfig.Config
	appLogger *lingolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lingo",
	Short: "Lingo language front end",
	Long: `Lingo is a small programming language front end with a byte-level
lexer, a Pratt parser, and an interactive shell.

Commands:
  repl     - Interactive token and AST exploration
  lex      - Print the token stream of a source
  parse    - Parse a source and print diagnostics or the tree
  fmt      - Print the canonical formatting of a source
  version  - Show version information`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered lingo.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, text, console)")
}

// setup loads the configuration and prepares the shared logger before
// any subcommand runs
func setup(cmd *cobra.Command, args []string) error {
	var err error

	if cfgFile != "" {
		appConfig, err = lingoconfig.LoadWithOptions(cfgFile, lingoconfig.LoadOptions{
			Format:    lingoconfig.FormatAuto,
			EnvPrefix: lingoconfig.DefaultEnvPrefix,
		})
	} else {
		appConfig, err = lingoconfig.DiscoverWithDefaults()
	}
	if err != nil {
		return err
	}

	appLogger, err = buildLogger()
	if err != nil {
		return err
	}
	lingolog.SetDefault(appLogger)

	return nil
}

func buildLogger() (*lingolog.Logger, error) {
	level := logLevel
	if level == "" {
		level = appConfig.GetString("log.level", "info")
	}
	if verbose {
		level = "debug"
	}
	parsedLevel, err := lingolog.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	format := logFormat
	if format == "" {
		format = appConfig.GetString("log.format", "text")
	}
	parsedFormat, err := lingolog.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	return lingolog.New().WithLevel(parsedLevel).WithFormat(parsedFormat), nil
}

// newEngine builds an engine from the loaded configuration
func newEngine(collectAll bool) *lingo.Engine {
	return lingo.New(lingo.Options{
		Logger:           appLogger,
		MaxSourceLength:  appConfig.GetInt("engine.max_source_length", lingo.DefaultMaxSourceLength),
		CollectAllTokens: collectAll,
	})
}

// readSource resolves the source text from --eval, a file argument, or
// stdin when the argument is missing or "-"
func readSource(args []string, eval string) (string, string, error) {
	if eval != "" {
		return eval, "<eval>", nil
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", lingoerror.Wrap(err, "failed to read source from stdin").
				WithCode(lingoerror.CodeSourceRead)
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", lingoerror.Wrap(err, fmt.Sprintf("failed to read source file %s", args[0])).
			WithCode(lingoerror.CodeFileRead).
			WithDetail("path", args[0])
	}
	return string(data), args[0], nil
}
