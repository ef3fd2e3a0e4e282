package main

import (
	"os"

	"spendtrack/internal/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
