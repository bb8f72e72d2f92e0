package main

import (
	"os"

	"notebook/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], cli.NewApp()))
}
