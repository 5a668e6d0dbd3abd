package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/lingo/repl"
)

var (
	replMode      string
	replPrompt    string
	replNoHistory bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Lingo shell",
	Long: `Starts an interactive session that reads Lingo source line by line
and prints either the token stream or the parsed AST.

Meta-commands inside the session:
  :help     - show available commands
  :quit     - exit the session (:q, :exit)
  :mode     - show or switch between tokens and ast output
  :history  - list the source lines entered this session
  :clear    - clear the screen

Examples:
  lingo repl
  lingo repl --mode ast
  lingo repl --prompt "lingo> " --no-history`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replMode, "mode", "", "initial output mode (tokens, ast)")
	replCmd.Flags().StringVar(&replPrompt, "prompt", "", "prompt shown before each line")
	replCmd.Flags().BoolVar(&replNoHistory, "no-history", false, "disable persistent line history")
}

func runREPL(cmd *cobra.Command, args []string) error {
	modeName := replMode
	if modeName == "" {
		modeName = appConfig.GetString("repl.mode", repl.ModeTokens.String())
	}
	mode, err := repl.ParseMode(modeName)
	if err != nil {
		return err
	}

	prompt := replPrompt
	if prompt == "" {
		prompt = appConfig.GetString("repl.prompt", repl.DefaultPrompt)
	}

	session, err := repl.New(repl.Options{
		Engine:         newEngine(true),
		Logger:         appLogger,
		Prompt:         prompt,
		HistoryFile:    appConfig.GetString("repl.history_file", ""),
		Mode:           mode,
		DisableHistory: replNoHistory,
	})
	if err != nil {
		return err
	}

	return session.Run()
}
