package main

import (
	"os"

	"journey-backend/cmd/journeyctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
