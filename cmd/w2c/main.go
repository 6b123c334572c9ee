package main

import (
	"os"

	"github.com/vivekpraj/website-to-chatbot-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
