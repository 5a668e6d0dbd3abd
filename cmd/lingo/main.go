package main

import (
	"os"

	"github.com/msto63/lingo/cmd/lingo/cmd"
	lingoerror "github.com/msto63/lingo/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(lingoerror.GetExitCode(err))
	}
}
