package main

import (
	"os"

	"rorepo/cmd/repocheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
