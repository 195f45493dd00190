// Package main is the entry point for the athena CLI binary.
package main

import (
	"os"

	cli "athena-connect/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
