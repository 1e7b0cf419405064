package main

import (
	"fmt"
	"os"

	"github.com/roach88/tql/internal/cli"
	"github.com/roach88/tql/internal/errors"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
