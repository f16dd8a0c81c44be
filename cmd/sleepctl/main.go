package main

import (
	"os"
	_ "time/tzdata" // Embed timezone database for minimal containers

	"github.com/blaisecz/sleep-bot/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
