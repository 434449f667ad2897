package main

import (
	"os"

	"github.com/arthur-debert/assetgen/internal/commands"
)

func main() {
	os.Exit(commands.Execute())
}
