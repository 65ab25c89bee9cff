package main

import (
	"fmt"
	"os"

	"github.com/cyphera/cyphera-expense/libs/go/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.WithComponent(logger.ComponentCLI).Sugar().Errorw("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
	_ = logger.Sync()
}
