package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/assetgen/internal/commands"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <%s>\n", os.Args[0], strings.Join(commands.Shells, "|"))
		os.Exit(1)
	}

	shell := os.Args[1]
	if err := commands.GenCompletion(commands.NewRootCmd(), shell, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", shell, err)
		fmt.Fprintf(os.Stderr, "Supported shells: %s\n", strings.Join(commands.Shells, ", "))
		os.Exit(1)
	}
}
