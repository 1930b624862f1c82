package main

import (
	"os"

	"shopadmin/cmd/shopadmin/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
