package main

import (
	"os"

	"workspace-admin/cmd/wsctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
