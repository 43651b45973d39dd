package main

import (
	"os"

	"edbatch/cmd/edbatch/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
