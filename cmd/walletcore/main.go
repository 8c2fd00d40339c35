package main

import (
	"os"

	"walletcore/cmd/walletcore/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
