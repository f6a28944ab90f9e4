package main

import (
	"fmt"
	"os"

	"tableflip.dev/gratitude/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gratitude:", err)
		os.Exit(1)
	}
}
