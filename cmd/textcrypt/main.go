package main

import (
	"os"

	"textcrypt/cmd/textcrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
