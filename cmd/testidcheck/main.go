// testidcheck - Test ID coverage checker for JSX/TSX sources
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/testidcheck

package main

import (
	"os"

	"github.com/ariel-frischer/testidcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
