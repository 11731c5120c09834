package main

import (
	"os"

	"passkeeper/cmd/passkeeper/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
