// Package main provides the sqlrefs command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlrefs/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
