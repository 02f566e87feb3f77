package main

import (
	"os"

	"fsmkit/cmd/fsm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
